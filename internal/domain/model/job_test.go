package model

import (
	"errors"
	"testing"

	"github.com/chenna-nefer/InsightScout-new/internal/domain"
)

func TestNewJob(t *testing.T) {
	job, err := NewJob("01ARZ3NDEKTSV4RRFFQ69G5FAV", []string{"Acme", "Globex"})
	if err != nil {
		t.Fatalf("NewJob: %v", err)
	}
	if job.Status != JobStatusProcessing || job.Progress != 0 || job.Total != 2 {
		t.Errorf("unexpected initial job: %+v", job)
	}
	if job.Results == nil || len(job.Results) != 0 {
		t.Error("results must start as an empty non-nil slice")
	}
	if job.CreatedAt.IsZero() || job.LastUpdated.IsZero() {
		t.Error("timestamps not set")
	}
}

func TestNewJobValidation(t *testing.T) {
	if _, err := NewJob("", []string{"Acme"}); !errors.Is(err, domain.ErrInvalidArgument) {
		t.Errorf("empty id err = %v", err)
	}
	if _, err := NewJob("id", nil); !errors.Is(err, domain.ErrInvalidArgument) {
		t.Errorf("empty companies err = %v", err)
	}
}

func TestJobStatusIsTerminal(t *testing.T) {
	cases := map[JobStatus]bool{
		JobStatusProcessing: false,
		JobStatusCompleted:  true,
		JobStatusFailed:     true,
		JobStatusCancelled:  true,
	}
	for status, want := range cases {
		if got := status.IsTerminal(); got != want {
			t.Errorf("%s.IsTerminal() = %v, want %v", status, got, want)
		}
	}
}

func TestCloneIsDeep(t *testing.T) {
	job, _ := NewJob("id", []string{"Acme"})
	job.Results = append(job.Results, CompanyResult{
		CompanyName:  "Acme",
		FoundersData: testFounders(),
		Status:       ResultStatusCompleted,
	})

	cp := job.Clone()
	cp.Companies[0] = "Evil"
	cp.Results[0].CompanyName = "Evil"
	cp.Results[0].FoundersData[0].Email = "evil@example.com"

	if job.Companies[0] != "Acme" {
		t.Error("clone shares the companies slice")
	}
	if job.Results[0].CompanyName != "Acme" {
		t.Error("clone shares the results slice")
	}
	if job.Results[0].FoundersData[0].Email != "jane@acme.com" {
		t.Error("clone shares founder data")
	}
}

// testFounders is shared clone-test fixture data.
func testFounders() []Founder {
	return []Founder{{
		Name:        "Jane Doe",
		Role:        "CEO",
		LinkedInURL: "https://linkedin.com/in/janedoe",
		Email:       "jane@acme.com",
		Phone:       NotFound,
	}}
}

func TestProgressPercent(t *testing.T) {
	cases := []struct {
		processed, total, want int
	}{
		{0, 3, 0},
		{1, 3, 33},
		{2, 3, 66},
		{3, 3, 100},
		{1, 7, 14},
		{0, 0, 0},
		{5, 0, 0},
	}
	for _, tc := range cases {
		if got := ProgressPercent(tc.processed, tc.total); got != tc.want {
			t.Errorf("ProgressPercent(%d, %d) = %d, want %d", tc.processed, tc.total, got, tc.want)
		}
	}
}
