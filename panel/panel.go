// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package panel

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/danielhkuo/quickly-tally/auth"
	"github.com/danielhkuo/quickly-tally/catalog"
	"github.com/danielhkuo/quickly-tally/models"
)

var (
	ErrInvalidControl = errors.New("invalid control")
	ErrNoTransition   = errors.New("no page in that direction")
	ErrPageOutOfRange = errors.New("page out of range")
)

// Button labels longer than this are cut
const MaxLabelRunes = 20

const fieldSep = ":"

// Labels for the fixed controls
type Labels struct {
	Prev      string
	Next      string
	Remaining string
}

var DefaultLabels = Labels{
	Prev:      "◀",
	Next:      "▶",
	Remaining: "Remaining votes",
}

// Interaction is a decoded control press.
type Interaction struct {
	Kind models.ControlKind
	Page int
	// Key is set only for ControlSelect
	Key models.VoteKey
}

// Builder renders panels from the catalog. It holds no per-panel state.
type Builder struct {
	catalog *catalog.Catalog
	signer  *auth.Signer
	title   string
	labels  Labels
}

func NewBuilder(cat *catalog.Catalog, signer *auth.Signer, title string) *Builder {
	return &Builder{
		catalog: cat,
		signer:  signer,
		title:   title,
		labels:  DefaultLabels,
	}
}

// WithLabels returns a copy of the builder using different fixed labels.
func (b *Builder) WithLabels(labels Labels) *Builder {
	copied := *b
	copied.labels = labels
	return &copied
}

// PageCount is the number of pages, one per category.
func (b *Builder) PageCount() int {
	return b.catalog.Len()
}

// Render builds the panel for a page. Every call yields a new panel ID.
func (b *Builder) Render(page int) (models.Panel, error) {
	n := b.catalog.Len()
	if page < 0 || page >= n {
		return models.Panel{}, fmt.Errorf("%w: %d not in [0, %d)", ErrPageOutOfRange, page, n)
	}

	cat := b.catalog.Category(page)
	controls := make([]models.Control, 0, len(cat.Options)+3)

	for i, opt := range cat.Options {
		controls = append(controls, models.Control{
			Kind:     models.ControlSelect,
			CustomID: b.ControlID(models.ControlSelect, page, strconv.Itoa(i)),
			Label:    truncateLabel(opt),
			Style:    models.StylePrimary,
			Category: cat.Name,
			Option:   opt,
		})
	}

	if page > 0 {
		controls = append(controls, models.Control{
			Kind:     models.ControlPrev,
			CustomID: b.ControlID(models.ControlPrev, page),
			Label:    b.labels.Prev,
			Style:    models.StyleSecondary,
		})
	}
	if page < n-1 {
		controls = append(controls, models.Control{
			Kind:     models.ControlNext,
			CustomID: b.ControlID(models.ControlNext, page),
			Label:    b.labels.Next,
			Style:    models.StyleSecondary,
		})
	}

	controls = append(controls, models.Control{
		Kind:     models.ControlRemaining,
		CustomID: b.ControlID(models.ControlRemaining, page),
		Label:    b.labels.Remaining,
		Style:    models.StyleSuccess,
	})

	return models.Panel{
		ID:        uuid.NewString(),
		Page:      page,
		PageCount: n,
		Category:  cat.Name,
		Header:    b.Header(cat.Name),
		Controls:  controls,
	}, nil
}

// Header is the panel message text for a category.
func (b *Builder) Header(category string) string {
	if b.title == "" {
		return "Current category: " + category
	}
	return b.title + "\nCurrent category: " + category
}

// Transition returns the page a prev/next press leads to.
func (b *Builder) Transition(page int, kind models.ControlKind) (int, error) {
	n := b.catalog.Len()
	switch kind {
	case models.ControlPrev:
		if page <= 0 || page >= n {
			return page, ErrNoTransition
		}
		return page - 1, nil
	case models.ControlNext:
		if page < 0 || page >= n-1 {
			return page, ErrNoTransition
		}
		return page + 1, nil
	}
	return page, fmt.Errorf("%w: %q is not a navigation control", ErrInvalidControl, kind)
}

// Decode verifies a control ID and resolves it against the catalog.
//
// Format: kind:page[:option]:tag, where option is the option index and tag
// signs the catalog fingerprint plus everything before it.
func (b *Builder) Decode(customID string) (Interaction, error) {
	cut := strings.LastIndex(customID, fieldSep)
	if cut < 0 {
		return Interaction{}, fmt.Errorf("%w: malformed id", ErrInvalidControl)
	}
	payload, tag := customID[:cut], customID[cut+1:]
	if err := b.signer.Verify(b.signedPayload(payload), tag); err != nil {
		return Interaction{}, fmt.Errorf("%w: %w", ErrInvalidControl, err)
	}

	fields := strings.Split(payload, fieldSep)
	kind := models.ControlKind(fields[0])

	wantFields := 2
	switch kind {
	case models.ControlSelect:
		wantFields = 3
	case models.ControlPrev, models.ControlNext, models.ControlRemaining:
	default:
		return Interaction{}, fmt.Errorf("%w: unknown kind %q", ErrInvalidControl, kind)
	}
	if len(fields) != wantFields {
		return Interaction{}, fmt.Errorf("%w: malformed id", ErrInvalidControl)
	}

	page, err := strconv.Atoi(fields[1])
	if err != nil {
		return Interaction{}, fmt.Errorf("%w: bad page %q", ErrInvalidControl, fields[1])
	}
	// A catalog that shrank since the panel was rendered invalidates it
	if page < 0 || page >= b.catalog.Len() {
		return Interaction{}, fmt.Errorf("%w: page %d out of range", ErrInvalidControl, page)
	}

	in := Interaction{Kind: kind, Page: page}
	if kind == models.ControlSelect {
		cat := b.catalog.Category(page)
		idx, err := strconv.Atoi(fields[2])
		if err != nil || idx < 0 || idx >= len(cat.Options) {
			return Interaction{}, fmt.Errorf("%w: bad option %q", ErrInvalidControl, fields[2])
		}
		in.Key = models.VoteKey{Category: cat.Name, Option: cat.Options[idx]}
	}
	return in, nil
}

// ControlID builds the signed ID for a control. extra carries the option
// index for select controls.
func (b *Builder) ControlID(kind models.ControlKind, page int, extra ...string) string {
	parts := append([]string{string(kind), strconv.Itoa(page)}, extra...)
	payload := strings.Join(parts, fieldSep)
	return payload + fieldSep + b.signer.Sign(b.signedPayload(payload))
}

// signedPayload ties a control to the catalog it was rendered from
func (b *Builder) signedPayload(payload string) string {
	return b.catalog.Fingerprint() + fieldSep + payload
}

func truncateLabel(label string) string {
	runes := []rune(label)
	if len(runes) <= MaxLabelRunes {
		return label
	}
	return string(runes[:MaxLabelRunes])
}
