// Package gateway talks to the chat-completion service behind the
// celebration-idea and global-holiday features. Calls are single-shot:
// no retry, no backoff, no request coalescing. Failures never reach the
// user; each operation substitutes its own fallback value and logs.
package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"horizon/internal/constants"
	"horizon/internal/logger"
	"horizon/internal/models"
)

// Completer is the minimal completion surface the gateway needs. The
// production implementation wraps the DeepSeek client; tests substitute
// a canned one.
type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

const systemPrompt = "You are a concise assistant for a holiday countdown app. " +
	"Respond with only a JSON array matching the requested shape, no prose, no code fences."

// Gateway issues suggestion requests. A nil completer (no credential
// configured) puts the gateway in permanent fallback mode.
type Gateway struct {
	completer Completer
	timeout   time.Duration
}

// New builds a gateway. completer may be nil; timeout bounds each call.
func New(completer Completer, timeout time.Duration) *Gateway {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Gateway{completer: completer, timeout: timeout}
}

// FallbackIdeas is the deterministic substitute returned whenever the
// idea request fails for any reason.
func FallbackIdeas() []models.CelebrationIdea {
	return []models.CelebrationIdea{
		{Title: "Plan Ahead", Description: "Create a list of activities you want to do."},
		{Title: "Theme Night", Description: "Host a small gathering with related food or music."},
		{Title: "Capture Memories", Description: "Get your camera ready for the special day."},
	}
}

// CelebrationIdeas asks for exactly three short celebration ideas for
// the named event. Transport, parse, and shape failures all return the
// canned fallback list.
func (g *Gateway) CelebrationIdeas(ctx context.Context, eventName string) []models.CelebrationIdea {
	prompt := fmt.Sprintf(
		"Suggest 3 creative ways to celebrate or prepare for: %s. Keep them short and inspiring. "+
			"Return a JSON array of objects with string fields \"title\" and \"description\".",
		eventName)

	var ideas []models.CelebrationIdea
	if err := g.complete(ctx, prompt, &ideas); err != nil {
		logger.Warn("celebration ideas request failed, using fallback", "event", eventName, "error", err)
		return FallbackIdeas()
	}

	valid := ideas[:0]
	for _, idea := range ideas {
		if idea.Title != "" && idea.Description != "" {
			valid = append(valid, idea)
		}
	}
	if len(valid) == 0 {
		logger.Warn("celebration ideas response had no usable entries, using fallback", "event", eventName)
		return FallbackIdeas()
	}
	if len(valid) > 3 {
		valid = valid[:3]
	}
	return valid
}

// PublicHolidays asks for up to five major public holidays for the
// given country in the current or next calendar year. Any failure
// returns an empty list: there is no safe generic substitute for
// country-specific holiday data.
func (g *Gateway) PublicHolidays(ctx context.Context, country string) []models.GlobalHoliday {
	year := time.Now().Year()
	prompt := fmt.Sprintf(
		"Provide a list of 5 major public holidays for %s in %d or %d. "+
			"Return a JSON array of objects with string fields \"name\", \"date\" (YYYY-MM-DD), "+
			"\"description\", and \"emoji\" (a single suitable emoji).",
		country, year, year+1)

	var holidays []models.GlobalHoliday
	if err := g.complete(ctx, prompt, &holidays); err != nil {
		logger.Warn("public holidays request failed", "country", country, "error", err)
		return []models.GlobalHoliday{}
	}

	valid := holidays[:0]
	for _, h := range holidays {
		if h.Name == "" || h.Description == "" {
			continue
		}
		if _, err := time.Parse(constants.DateFormat, h.Date); err != nil {
			logger.Debug("dropping holiday with unparseable date", "name", h.Name, "date", h.Date)
			continue
		}
		valid = append(valid, h)
	}
	if len(valid) > 5 {
		valid = valid[:5]
	}
	return valid
}

func (g *Gateway) complete(ctx context.Context, prompt string, out any) error {
	if g.completer == nil {
		return fmt.Errorf("no completion credential configured")
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	text, err := g.completer.Complete(ctx, systemPrompt, prompt)
	if err != nil {
		return err
	}

	raw, err := extractJSONArray(text)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("response did not match the requested shape: %w", err)
	}
	return nil
}

// extractJSONArray pulls the outermost JSON array out of a completion,
// tolerating stray prose or code fences around it.
func extractJSONArray(text string) ([]byte, error) {
	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start == -1 || end == -1 || end < start {
		return nil, fmt.Errorf("response contains no JSON array")
	}
	return []byte(text[start : end+1]), nil
}
