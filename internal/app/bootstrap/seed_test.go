package bootstrap

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/dalemusser/devcamper/internal/app/bootcamps"
	"github.com/dalemusser/devcamper/internal/domain/models"
	"go.uber.org/zap"
)

type fakeCreator struct {
	names map[string]bool
	got   []models.Bootcamp
}

func (f *fakeCreator) Create(ctx context.Context, b models.Bootcamp) (models.Bootcamp, error) {
	f.got = append(f.got, b)
	if b.Address == "" {
		return b, &bootcamps.ValidationError{}
	}
	if f.names[b.Name] {
		return b, &bootcamps.UniquenessError{Field: "Name", Value: b.Name}
	}
	f.names[b.Name] = true
	return b, nil
}

func writeSeed(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bootcamps.json")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

const seedJSON = `[
  {
    "name": "Devworks Bootcamp",
    "description": "Devworks is a full stack JavaScript Bootcamp.",
    "website": "https://devworks.com",
    "address": "233 Bay State Rd Boston MA 02215",
    "careers": ["Web Development", "UI/UX", "Business"],
    "housing": true,
    "acceptGi": true
  },
  {
    "name": "ModernTech Bootcamp",
    "description": "ModernTech has one goal.",
    "address": "220 Pawtucket St, Lowell, MA 01854",
    "careers": ["Web Development", "UI/UX", "Mobile Development"],
    "jobAssistance": true
  },
  {
    "name": "Devworks Bootcamp",
    "description": "Duplicate entry.",
    "address": "233 Bay State Rd Boston MA 02215",
    "careers": ["Other"]
  },
  {
    "name": "No Address Camp",
    "description": "Missing its address.",
    "careers": ["Other"]
  }
]`

func TestSeedBootcamps(t *testing.T) {
	creator := &fakeCreator{names: map[string]bool{}}
	path := writeSeed(t, seedJSON)

	res, err := seedBootcamps(context.Background(), creator, path, zap.NewNop())
	if err != nil {
		t.Fatalf("seedBootcamps failed: %v", err)
	}
	if res != (seedResult{Created: 2, Skipped: 1, Failed: 1}) {
		t.Errorf("result = %+v", res)
	}

	first := creator.got[0]
	if !first.Housing || !first.AcceptGi || first.Website != "https://devworks.com" {
		t.Errorf("JSON fields not decoded: %+v", first)
	}
	if !creator.got[1].JobAssistance {
		t.Error("jobAssistance not decoded")
	}
}

func TestSeedBootcamps_FileErrors(t *testing.T) {
	creator := &fakeCreator{names: map[string]bool{}}

	_, err := seedBootcamps(context.Background(), creator, filepath.Join(t.TempDir(), "missing.json"), zap.NewNop())
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file: got %v", err)
	}

	_, err = seedBootcamps(context.Background(), creator, writeSeed(t, "{not json"), zap.NewNop())
	if err == nil {
		t.Error("expected parse error")
	}
	if len(creator.got) != 0 {
		t.Errorf("Create called %d times for unreadable files", len(creator.got))
	}
}
