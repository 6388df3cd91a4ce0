package scan

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/stejus2010/stai-25/internal/history"
	"github.com/stejus2010/stai-25/internal/ingredients"
	"github.com/stejus2010/stai-25/internal/ocr"
	"github.com/stejus2010/stai-25/internal/profile"
	"github.com/stejus2010/stai-25/internal/quota"
)

// ProfileReader is the slice of the profile service the orchestrator needs.
type ProfileReader interface {
	Get(ctx context.Context, userID string) (*profile.UserProfile, error)
}

// Uploader stores the captured label image. Optional; scans proceed without.
type Uploader interface {
	Upload(ctx context.Context, key string, body io.Reader) (string, error)
}

// Result is the outcome of one scan cycle. The allergy alert is surfaced
// before the harmful-ingredient findings.
type Result struct {
	Denied          string   `json:"denied,omitempty"` // quota denial reason, empty when the scan ran
	Text            string   `json:"extracted_text"`
	AllergyAlert    string   `json:"allergy_alert,omitempty"`
	AllergiesFound  []string `json:"allergies_found"`
	HarmfulDiseases []string `json:"harmful_diseases"`
	ImageURL        string   `json:"image_url,omitempty"`
}

// Service sequences one scan: quota, image storage, OCR, quota again for the
// analysis, matching, history. It owns no algorithm of its own.
type Service struct {
	tracker      *quota.Tracker
	ocrClient    ocr.Client
	profiles     ProfileReader
	records      history.Repository
	guestRecords history.Repository
	uploader     Uploader
	dict         ingredients.Dictionary
	syn          ingredients.Synonyms
}

func NewService(
	tracker *quota.Tracker,
	ocrClient ocr.Client,
	profiles ProfileReader,
	records history.Repository,
	guestRecords history.Repository,
	uploader Uploader,
	dict ingredients.Dictionary,
	syn ingredients.Synonyms,
) *Service {
	return &Service{
		tracker:      tracker,
		ocrClient:    ocrClient,
		profiles:     profiles,
		records:      records,
		guestRecords: guestRecords,
		uploader:     uploader,
		dict:         dict,
		syn:          syn,
	}
}

// Scan runs one full cycle for an uploaded label image. An empty userID means
// a guest session: no quota, no stored allergy list, in-memory history only,
// bucketed under guestKey so guest sessions never see each other's scans.
//
// The scan credit is consumed before OCR runs and is not refunded when OCR
// fails.
func (s *Service) Scan(ctx context.Context, userID, guestKey string, image io.Reader, filename string) (*Result, error) {
	if userID != "" {
		dec, err := s.tracker.CheckAndIncrement(ctx, userID, quota.ActionScan)
		if err != nil {
			return nil, err
		}
		if !dec.Allowed {
			return &Result{Denied: dec.Reason}, nil
		}
	}

	data, err := io.ReadAll(image)
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}

	imageURL := s.storeImage(ctx, userID, filename, data)

	text, err := s.ocrClient.Recognize(ctx, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	if userID != "" {
		dec, err := s.tracker.CheckAndIncrement(ctx, userID, quota.ActionAnalysis)
		if err != nil {
			return nil, err
		}
		if !dec.Allowed {
			return &Result{Denied: dec.Reason, Text: text, ImageURL: imageURL}, nil
		}
	}

	result, err := s.analyze(ctx, userID, text)
	if err != nil {
		return nil, err
	}
	result.ImageURL = imageURL
	s.persist(ctx, userID, guestKey, result)
	return result, nil
}

// Reanalyze re-runs detection on user-edited OCR text. No OCR call and no
// quota charge; the matcher and the history append repeat as in a scan.
func (s *Service) Reanalyze(ctx context.Context, userID, guestKey, text string) (*Result, error) {
	result, err := s.analyze(ctx, userID, text)
	if err != nil {
		return nil, err
	}
	s.persist(ctx, userID, guestKey, result)
	return result, nil
}

func (s *Service) analyze(ctx context.Context, userID, text string) (*Result, error) {
	var allergies []string
	if userID != "" {
		p, err := s.profiles.Get(ctx, userID)
		if err != nil && !errors.Is(err, profile.ErrNotFound) {
			return nil, fmt.Errorf("load allergy list: %w", err)
		}
		if p != nil {
			allergies = p.Allergies
		}
	}

	match := ingredients.Match(text, allergies, s.dict, s.syn)

	result := &Result{
		Text:            text,
		AllergiesFound:  match.AllergyHits,
		HarmfulDiseases: match.HarmfulDiseases,
	}
	if len(match.AllergyHits) > 0 {
		result.AllergyAlert = "Contains: " + strings.Join(match.AllergyHits, ", ")
	}
	return result, nil
}

// persist appends the scan record best-effort: a failed append is logged and
// the user still sees the result.
func (s *Service) persist(ctx context.Context, userID, guestKey string, result *Result) {
	repo := s.records
	if userID == "" {
		repo = s.guestRecords
		userID = guestKey
		if userID == "" {
			userID = history.GuestUserID
		}
	}

	record := &history.ScanRecord{
		UserID:          userID,
		CreatedAt:       time.Now(),
		IngredientsText: history.Truncate(result.Text),
		AllergiesFound:  result.AllergiesFound,
		HarmfulNotes:    result.HarmfulDiseases,
		ImageURL:        result.ImageURL,
	}
	if err := repo.Append(ctx, record); err != nil {
		log.Printf("history append failed for user %s: %v", userID, err)
	}
}

// storeImage uploads the captured image best-effort and returns its public
// URL, or "" when storage is disabled or the upload fails.
func (s *Service) storeImage(ctx context.Context, userID, filename string, data []byte) string {
	if s.uploader == nil {
		return ""
	}
	if userID == "" {
		userID = history.GuestUserID
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		ext = ".jpg"
	}
	key := fmt.Sprintf("scans/%s/%s%s", userID, uuid.New().String(), ext)

	url, err := s.uploader.Upload(ctx, key, bytes.NewReader(data))
	if err != nil {
		log.Printf("image upload failed: %v", err)
		return ""
	}
	return url
}
