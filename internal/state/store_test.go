package state

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/five82/showcase/internal/content"
)

func sampleHome() *content.HomepageConfig {
	return &content.HomepageConfig{
		IsPublish:          "1",
		CarouselImageLists: []content.CarouselImage{{ID: 1, ImageURL: "a.jpg"}, {ID: 2, ImageURL: "b.jpg"}},
	}
}

func sampleProduct() *content.ProductConfig {
	return &content.ProductConfig{
		IsPublish:    "1",
		LLMScenarios: []content.ApplicationScenario{{ScenarioID: 1, ScenarioName: "Scenario 1"}},
	}
}

func TestStore_UpdateAndSnapshotClone(t *testing.T) {
	var s Store

	before := time.Now()
	s.Update(sampleHome(), sampleProduct(), nil)

	snap := s.Snapshot()
	if !snap.HasHomepage || !snap.HasProduct || !snap.Ready() {
		t.Fatalf("snapshot flags = %v/%v, want both set", snap.HasHomepage, snap.HasProduct)
	}
	if len(snap.Homepage.CarouselImageLists) != 2 {
		t.Fatalf("carousel = %#v, want 2 images", snap.Homepage.CarouselImageLists)
	}
	if snap.LastUpdated.Before(before) || snap.LastSuccess.Before(before) {
		t.Fatalf("LastUpdated = %v LastSuccess = %v, want >= %v", snap.LastUpdated, snap.LastSuccess, before)
	}
	if snap.LastError != nil {
		t.Fatalf("LastError = %v, want nil", snap.LastError)
	}

	snap.Homepage.CarouselImageLists[0].ImageURL = "mutated"
	snap.Product.LLMScenarios[0].ScenarioName = "mutated"
	again := s.Snapshot()
	if again.Homepage.CarouselImageLists[0].ImageURL != "a.jpg" {
		t.Fatalf("Snapshot shares the carousel slice")
	}
	if again.Product.LLMScenarios[0].ScenarioName != "Scenario 1" {
		t.Fatalf("Snapshot shares the scenario slice")
	}
}

func TestStore_UpdateDoesNotAliasInput(t *testing.T) {
	var s Store
	home := sampleHome()
	s.Update(home, nil, nil)
	home.CarouselImageLists[0].ImageURL = "mutated"
	if got := s.Snapshot().Homepage.CarouselImageLists[0].ImageURL; got != "a.jpg" {
		t.Fatalf("stored image = %q, want a.jpg", got)
	}
}

func TestStore_UpdateErrorKeepsPreviousData(t *testing.T) {
	var s Store
	s.Update(sampleHome(), sampleProduct(), nil)
	prev := s.Snapshot()

	origErr := errors.New("interface request timed out")
	s.Update(nil, nil, origErr)

	snap := s.Snapshot()
	if !snap.HasHomepage || len(snap.Homepage.CarouselImageLists) != len(prev.Homepage.CarouselImageLists) {
		t.Fatalf("homepage changed on error: got %#v", snap.Homepage)
	}
	if !snap.HasProduct {
		t.Fatalf("product dropped on error")
	}
	if !snap.LastSuccess.Equal(prev.LastSuccess) {
		t.Fatalf("LastSuccess moved on error")
	}
	if !errors.Is(snap.LastError, origErr) {
		t.Fatalf("LastError = %v, want wrapped %v", snap.LastError, origErr)
	}
	if reflect.ValueOf(snap.LastError).Pointer() == reflect.ValueOf(origErr).Pointer() {
		t.Fatalf("Snapshot should not hand out the stored error instance")
	}
}

func TestStore_PartialUpdateWithError(t *testing.T) {
	var s Store
	s.Update(sampleHome(), nil, errors.New("product failed"))

	snap := s.Snapshot()
	if !snap.HasHomepage || snap.HasProduct {
		t.Fatalf("flags = %v/%v, want homepage only", snap.HasHomepage, snap.HasProduct)
	}
	if snap.ConsecutiveFailures != 1 {
		t.Fatalf("ConsecutiveFailures = %d, want 1", snap.ConsecutiveFailures)
	}
}

func TestStore_ConsecutiveFailures(t *testing.T) {
	var s Store

	snap := s.Snapshot()
	if snap.ConsecutiveFailures != 0 || snap.IsOffline() || snap.Ready() {
		t.Fatalf("zero snapshot = %+v, want empty and online", snap)
	}

	for i, wantOffline := range []bool{false, true, true} {
		s.Update(nil, nil, errors.New("fail"))
		snap = s.Snapshot()
		if snap.ConsecutiveFailures != i+1 {
			t.Fatalf("ConsecutiveFailures = %d, want %d", snap.ConsecutiveFailures, i+1)
		}
		if snap.IsOffline() != wantOffline {
			t.Fatalf("after %d failures IsOffline() = %v, want %v", i+1, snap.IsOffline(), wantOffline)
		}
	}

	s.Update(sampleHome(), nil, nil)
	snap = s.Snapshot()
	if snap.ConsecutiveFailures != 0 || snap.IsOffline() {
		t.Fatalf("success did not reset failures: %+v", snap)
	}
	if snap.Refreshes != 4 {
		t.Fatalf("Refreshes = %d, want 4", snap.Refreshes)
	}
}
