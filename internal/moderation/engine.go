// Package moderation classifies user text against a profanity lexicon and a
// crisis-language lexicon.
//
// Profanity blocks the text. Crisis language never blocks: the verdict stays safe and
// carries Crisis=true so callers can raise an alert after the write succeeds.
package moderation

import (
	"strings"
	"sync"
	"sync/atomic"
)

// Verdict is the outcome of a single Verify call. Reason is empty when Safe.
type Verdict struct {
	Safe   bool   `json:"safe"`
	Reason string `json:"reason,omitempty"`
	Crisis bool   `json:"crisis"`
}

type CommunityMetadata struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

type CommunityVerdict struct {
	Valid  bool   `json:"valid"`
	Reason string `json:"reason,omitempty"`
	Crisis bool   `json:"crisis"`
}

type ruleset struct {
	reason    string
	profanity []string
	crisis    []string
	allowed   []string
	denied    []string
}

// Engine is safe for concurrent Verify calls. The ruleset is swapped atomically, so
// ExtendProfanity never blocks readers.
type Engine struct {
	rules   atomic.Pointer[ruleset]
	adminMu sync.Mutex
}

func NewEngine(lex *Lexicon) *Engine {
	e := &Engine{}
	e.rules.Store(&ruleset{
		reason:    lex.RejectionReason,
		profanity: lex.profanityTerms(),
		crisis:    normalizeTerms(lex.Crisis),
		allowed:   normalizeTerms(lex.Categories.Allowed),
		denied:    normalizeTerms(lex.Categories.Denied),
	})
	return e
}

// Verify treats empty text as safe.
func (e *Engine) Verify(text string) Verdict {
	if strings.TrimSpace(text) == "" {
		return Verdict{Safe: true}
	}
	rules := e.rules.Load()
	lower := strings.ToLower(text)

	if containsAny(lower, rules.profanity) {
		return Verdict{Safe: false, Reason: rules.reason}
	}
	return Verdict{Safe: true, Crisis: containsAny(lower, rules.crisis)}
}

func (e *Engine) VerifyCommunityMetadata(meta CommunityMetadata) CommunityVerdict {
	name := e.Verify(meta.Name)
	if !name.Safe {
		return CommunityVerdict{Valid: false, Reason: "community name rejected: " + name.Reason}
	}

	desc := e.Verify(meta.Description)
	if !desc.Safe {
		return CommunityVerdict{Valid: false, Reason: "community description rejected: " + desc.Reason}
	}

	crisis := name.Crisis || desc.Crisis
	category := strings.ToLower(strings.TrimSpace(meta.Category))
	if category == "" {
		return CommunityVerdict{Valid: true, Crisis: crisis}
	}

	rules := e.rules.Load()
	for _, allowed := range rules.allowed {
		if strings.Contains(allowed, category) || strings.Contains(category, allowed) {
			return CommunityVerdict{Valid: true, Crisis: crisis}
		}
	}
	if containsAny(category, rules.denied) {
		return CommunityVerdict{Valid: false, Reason: "category not allowed: " + meta.Category}
	}
	return CommunityVerdict{Valid: true, Crisis: crisis}
}

// AllowedCategories returns a copy of the category allow-list.
func (e *Engine) AllowedCategories() []string {
	allowed := e.rules.Load().allowed
	out := make([]string, len(allowed))
	copy(out, allowed)
	return out
}

// ExtendProfanity appends terms to the profanity lexicon and reports how many were new.
// Concurrent administrators are serialized.
func (e *Engine) ExtendProfanity(words ...string) int {
	e.adminMu.Lock()
	defer e.adminMu.Unlock()

	current := e.rules.Load()
	merged := normalizeTerms(append(append([]string{}, current.profanity...), words...))
	added := len(merged) - len(current.profanity)
	if added == 0 {
		return 0
	}

	next := *current
	next.profanity = merged
	e.rules.Store(&next)
	return added
}

func containsAny(s string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}
