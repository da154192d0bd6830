// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"strings"
	"testing"
)

func TestValuesOrderedById(t *testing.T) {
	t.Parallel()

	values := Values()
	if len(values) != len(issues) {
		t.Fatalf("Values() returned %d issues, want %d", len(values), len(issues))
	}
	for i, v := range values {
		if v.Id() != Id(i+1) {
			t.Errorf("Values()[%d].Id() = %d, want %d", i, v.Id(), i+1)
		}
		if strings.TrimSpace(string(v.MarkdownMsg())) == "" {
			t.Errorf("issue %d has an empty message", v.Id())
		}
	}
}

func TestGet(t *testing.T) {
	t.Parallel()

	ids := []Id{
		ConfigLoadFailedId,
		GarageFileNotFoundId,
		GarageFileInvalidId,
		CarNotFoundId,
		ValueOutOfRangeId,
		FuelChangeRejectedId,
		WheelsInconsistentId,
	}
	for _, id := range ids {
		if got := Get(id); got == nil || got.Id() != id {
			t.Errorf("Get(%d) = %v", id, got)
		}
	}
	if got := Get(Id(999)); got != nil {
		t.Errorf("Get(999) = %v, want nil", got)
	}
}

func TestRenderAppendsDocLinks(t *testing.T) {
	t.Parallel()

	i := &Issue{
		id:       ValueOutOfRangeId,
		mdMsg:    "# Heading",
		docLinks: []HttpLink{"https://example.com/doors"},
	}
	out, err := i.Render("notty")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(out, "Heading") {
		t.Errorf("Render() output missing heading: %q", out)
	}
	if !strings.Contains(out, "https://example.com/doors") {
		t.Errorf("Render() output missing link: %q", out)
	}
}

func TestRenderCatalog(t *testing.T) {
	t.Parallel()

	for _, i := range Values() {
		if _, err := i.Render("notty"); err != nil {
			t.Errorf("issue %d: Render() error = %v", i.Id(), err)
		}
	}
}

func TestActionableErrorIssue(t *testing.T) {
	t.Parallel()

	err := NewErrorContext().
		WithOperation("find car").
		WithIssue(CarNotFoundId).
		Wrap(errors.New("no such car")).
		Build()
	if got := err.Issue(); got == nil || got.Id() != CarNotFoundId {
		t.Errorf("Issue() = %v, want catalog entry %d", got, CarNotFoundId)
	}

	plain := &ActionableError{Operation: "find car"}
	if plain.Issue() != nil {
		t.Error("Issue() on error without id should be nil")
	}
}
