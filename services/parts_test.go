package services

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"repuestos-web/database"
	"repuestos-web/models"
)

func newTestService(t *testing.T) (*PartService, string) {
	t.Helper()
	dir := t.TempDir()
	db, err := database.Open(filepath.Join(dir, "repuestos.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	logger := zap.NewNop()
	exporter := NewExporter(db, filepath.Join(dir, "repuestos_master.xlsx"), logger)
	images := NewImageStore(filepath.Join(dir, "images"), logger)
	return NewPartService(db, images, exporter, logger), dir
}

func TestCreateThenSearch(t *testing.T) {
	svc, _ := newTestService(t)

	created, err := svc.Create(PartInput{
		VendorCode:   " W-100 ",
		OriginalCode: "OEM-55",
		Name:         "Filtro",
		Description:  "Filtro de aceite",
		Equipment:    "Compresor",
		Notes:        "stock bajo",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Id == 0 {
		t.Fatal("expected store-assigned id")
	}
	if created.VendorCode != "W-100" {
		t.Fatalf("vendor code not trimmed: %q", created.VendorCode)
	}

	found, err := svc.Search("W-100")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if found == nil {
		t.Fatal("expected a hit on vendor code")
	}
	if found.Name != "Filtro" || found.OriginalCode != "OEM-55" {
		t.Fatalf("round trip mismatch: %+v", found)
	}

	// The original code is a second exact-match branch.
	byOriginal, err := svc.Search("OEM-55")
	if err != nil {
		t.Fatalf("search by original code: %v", err)
	}
	if byOriginal == nil || byOriginal.Id != created.Id {
		t.Fatalf("expected the same record via original code, got %+v", byOriginal)
	}
}

func TestSearchIsCaseSensitiveAndExact(t *testing.T) {
	svc, _ := newTestService(t)
	if _, err := svc.Create(PartInput{VendorCode: "W-100", Name: "Filtro"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	for _, q := range []string{"w-100", "W-10", "W-1000"} {
		found, err := svc.Search(q)
		if err != nil {
			t.Fatalf("search %q: %v", q, err)
		}
		if found != nil {
			t.Fatalf("query %q should not match", q)
		}
	}
}

func TestSearchEmptyQuery(t *testing.T) {
	svc, _ := newTestService(t)

	for _, q := range []string{"", "   ", "\t"} {
		if _, err := svc.Search(q); !errors.Is(err, ErrEmptyQuery) {
			t.Fatalf("query %q: expected ErrEmptyQuery, got %v", q, err)
		}
	}
}

func TestCreateMissingFields(t *testing.T) {
	svc, _ := newTestService(t)

	cases := []PartInput{
		{VendorCode: "", Name: "Filtro"},
		{VendorCode: "   ", Name: "Filtro"},
		{VendorCode: "W-100", Name: ""},
		{VendorCode: "W-100", Name: "  "},
	}
	for _, in := range cases {
		if _, err := svc.Create(in); !errors.Is(err, ErrMissingFields) {
			t.Fatalf("input %+v: expected ErrMissingFields, got %v", in, err)
		}
	}
}

func TestCreateDefaultsStatus(t *testing.T) {
	svc, _ := newTestService(t)

	created, err := svc.Create(PartInput{VendorCode: "W-100", Name: "Filtro"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Status != models.StatusActive {
		t.Fatalf("expected default status %q, got %q", models.StatusActive, created.Status)
	}

	explicit, err := svc.Create(PartInput{VendorCode: "W-101", Name: "Correa", Status: "Baja"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if explicit.Status != "Baja" {
		t.Fatalf("explicit status overridden: %q", explicit.Status)
	}
}

func TestCreateDuplicateCode(t *testing.T) {
	svc, _ := newTestService(t)

	if _, err := svc.Create(PartInput{VendorCode: "W-100", Name: "Filtro"}); err != nil {
		t.Fatalf("first create: %v", err)
	}
	if _, err := svc.Create(PartInput{VendorCode: "W-100", Name: "Otro"}); !errors.Is(err, ErrDuplicateCode) {
		t.Fatalf("expected ErrDuplicateCode, got %v", err)
	}

	// The existing record is untouched.
	found, err := svc.Search("W-100")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if found == nil || found.Name != "Filtro" {
		t.Fatalf("existing record changed: %+v", found)
	}
}

func TestDeleteThenSearchMisses(t *testing.T) {
	svc, _ := newTestService(t)

	created, err := svc.Create(PartInput{VendorCode: "W-100", Name: "Filtro"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.Delete(created.Id); err != nil {
		t.Fatalf("delete: %v", err)
	}

	found, err := svc.Search("W-100")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if found != nil {
		t.Fatalf("deleted record still found: %+v", found)
	}
}

func TestDeleteNonexistentIsNoop(t *testing.T) {
	svc, dir := newTestService(t)

	if err := svc.Delete(9999); err != nil {
		t.Fatalf("delete of missing id should not fail: %v", err)
	}
	// The post-delete export hook still ran.
	if _, err := os.Stat(filepath.Join(dir, "repuestos_master.xlsx")); err != nil {
		t.Fatalf("expected regenerated spreadsheet: %v", err)
	}
}

func TestCreateWithImage(t *testing.T) {
	svc, dir := newTestService(t)

	created, err := svc.Create(PartInput{
		VendorCode:    "W 100/B",
		Name:          "Filtro",
		ImageFilename: "foto.PNG",
		ImageContent:  []byte("png-bytes"),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ImagePath != "images/W_100_B.png" {
		t.Fatalf("unexpected image path %q", created.ImagePath)
	}

	data, err := os.ReadFile(filepath.Join(dir, "images", "W_100_B.png"))
	if err != nil {
		t.Fatalf("read image: %v", err)
	}
	if string(data) != "png-bytes" {
		t.Fatalf("image content mismatch: %q", data)
	}
}

func TestCreateRejectsBadImageExtension(t *testing.T) {
	svc, dir := newTestService(t)

	_, err := svc.Create(PartInput{
		VendorCode:    "W-100",
		Name:          "Filtro",
		ImageFilename: "foto.gif",
		ImageContent:  []byte("gif-bytes"),
	})
	if !errors.Is(err, ErrBadImageType) {
		t.Fatalf("expected ErrBadImageType, got %v", err)
	}

	// Rejected before any file write and before any store write.
	if entries, err := os.ReadDir(filepath.Join(dir, "images")); err == nil && len(entries) > 0 {
		t.Fatalf("image directory should be empty, has %d entries", len(entries))
	}
	if found, err := svc.Search("W-100"); err != nil || found != nil {
		t.Fatalf("no record should exist, got part=%+v err=%v", found, err)
	}
}

func TestDuplicateCodeLeavesOrphanImage(t *testing.T) {
	svc, dir := newTestService(t)

	if _, err := svc.Create(PartInput{
		VendorCode:    "W-100",
		Name:          "Filtro",
		ImageFilename: "a.png",
		ImageContent:  []byte("first"),
	}); err != nil {
		t.Fatalf("first create: %v", err)
	}

	// The second image is saved before the insert is rejected, so it
	// overwrites the first part's file. Documented behavior.
	_, err := svc.Create(PartInput{
		VendorCode:    "W-100",
		Name:          "Otro",
		ImageFilename: "b.png",
		ImageContent:  []byte("second"),
	})
	if !errors.Is(err, ErrDuplicateCode) {
		t.Fatalf("expected ErrDuplicateCode, got %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "images", "W-100.png"))
	if err != nil {
		t.Fatalf("read image: %v", err)
	}
	if string(data) != "second" {
		t.Fatalf("expected overwritten image content, got %q", data)
	}
}
