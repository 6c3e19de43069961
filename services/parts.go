package services

import (
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"repuestos-web/models"
)

var (
	// ErrEmptyQuery means search was submitted without a code; the store is
	// never queried in that case.
	ErrEmptyQuery = errors.New("empty search query")
	// ErrMissingFields means vendor code or name was blank after trimming.
	ErrMissingFields = errors.New("vendor code and name are required")
	// ErrDuplicateCode means the vendor code already exists.
	ErrDuplicateCode = errors.New("code already exists")
)

// PartInput carries the add-form fields for a new part. ImageFilename and
// ImageContent are both set or both empty.
type PartInput struct {
	VendorCode   string
	OriginalCode string
	Name         string
	Description  string
	Equipment    string
	Notes        string
	Status       string

	ImageFilename string
	ImageContent  []byte
}

// PartService implements lookup, creation and deletion of part records.
// Spreadsheet regeneration runs as an explicit post-commit hook after every
// mutation, so the master file always mirrors the store.
type PartService struct {
	DB       *gorm.DB
	Images   *ImageStore
	Exporter *Exporter
	Logger   *zap.Logger
}

func NewPartService(db *gorm.DB, images *ImageStore, exporter *Exporter, logger *zap.Logger) *PartService {
	return &PartService{DB: db, Images: images, Exporter: exporter, Logger: logger}
}

// Search returns the part whose vendor or original code exactly equals code
// (case-sensitive, no normalization). A miss returns (nil, nil); a blank
// query returns ErrEmptyQuery without touching the store.
func (s *PartService) Search(code string) (*models.Part, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, ErrEmptyQuery
	}

	var part models.Part
	err := s.DB.Where("codigo_wiener = ? OR codigo_original = ?", code, code).First(&part).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &part, nil
}

// Create validates the input, saves the optional image, inserts the record
// and regenerates the master spreadsheet. The image is written before the
// insert, so a duplicate-code rejection can leave the file behind; that is
// the documented behavior, not cleaned up here.
func (s *PartService) Create(in PartInput) (*models.Part, error) {
	part := models.Part{
		VendorCode:   strings.TrimSpace(in.VendorCode),
		OriginalCode: strings.TrimSpace(in.OriginalCode),
		Name:         strings.TrimSpace(in.Name),
		Description:  strings.TrimSpace(in.Description),
		Equipment:    strings.TrimSpace(in.Equipment),
		Notes:        strings.TrimSpace(in.Notes),
		Status:       strings.TrimSpace(in.Status),
	}
	if part.VendorCode == "" || part.Name == "" {
		return nil, ErrMissingFields
	}
	if part.Status == "" {
		part.Status = models.StatusActive
	}

	if in.ImageFilename != "" {
		rel, err := s.Images.Save(part.VendorCode, in.ImageFilename, in.ImageContent)
		if err != nil {
			return nil, err
		}
		part.ImagePath = rel
	}

	if err := s.DB.Create(&part).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateCode
		}
		return nil, err
	}
	s.Logger.Info("part created",
		zap.Uint("id", part.Id), zap.String("codigo_wiener", part.VendorCode))

	if _, err := s.Exporter.Regenerate(); err != nil {
		return nil, err
	}
	return &part, nil
}

// Delete removes the record with the given id, then regenerates the master
// spreadsheet. A missing id is a no-op, not an error. The part's image file,
// if any, is left behind.
func (s *PartService) Delete(id uint) error {
	if err := s.DB.Delete(&models.Part{}, id).Error; err != nil {
		return err
	}
	s.Logger.Info("part deleted", zap.Uint("id", id))

	_, err := s.Exporter.Regenerate()
	return err
}
