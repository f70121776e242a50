package pipeline

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"hvacscan/internal"
	"hvacscan/internal/config"
	"hvacscan/internal/storage"
	"hvacscan/internal/taxonomy"
)

var (
	ErrNotExportable   = errors.New("asset type, manufacturer and model are required")
	ErrInvalidWorkbook = errors.New("invalid equipment list workbook")
)

// RegisterService runs records through classification and duplicate
// detection before they are committed to a project register.
type RegisterService struct {
	db         *storage.DB
	cfg        config.Config
	log        *zap.Logger
	classifier *Classifier
}

func NewRegisterService(db *storage.DB, cfg config.Config, log *zap.Logger) *RegisterService {
	if log == nil {
		log = zap.NewNop()
	}
	return &RegisterService{db: db, cfg: cfg, log: log, classifier: NewClassifier(WeightsFromConfig(cfg))}
}

func (s *RegisterService) Classifier() *Classifier {
	return s.classifier
}

type IntakeResult struct {
	Record         internal.EquipmentRecord `json:"record"`
	Classification *Classification          `json:"classification,omitempty"`
	NeedsReview    bool                     `json:"needsReview"`
	Warnings       []string                 `json:"warnings"`
	Duplicate      DuplicateResult          `json:"duplicate"`
	Appended       bool                     `json:"appended"`
	Entry          *internal.RegisterEntry  `json:"entry,omitempty"`
}

// Intake prepares record and appends it to the project's register. A blank
// asset type is filled from the classifier when it has a suggestion. A
// duplicate is reported without being appended unless force is set.
func (s *RegisterService) Intake(projectID string, record internal.EquipmentRecord, force bool) (IntakeResult, error) {
	if _, err := s.db.MustProject(projectID); err != nil {
		return IntakeResult{}, err
	}

	res, err := s.prepare(record)
	if err != nil {
		return res, err
	}
	err = s.db.WithRegister(projectID, func(reg *storage.RegisterTx) error {
		return s.commit(reg, projectID, &res, force)
	})
	return res, err
}

// prepare fills, classifies and validates record without touching the register.
func (s *RegisterService) prepare(record internal.EquipmentRecord) (IntakeResult, error) {
	record.Qty = record.Quantity()
	record = EnrichFromNotes(record)
	res := IntakeResult{Warnings: []string{}}

	if strings.TrimSpace(record.AssetType) == "" {
		c := s.classifier.Classify(record)
		res.Classification = &c
		res.NeedsReview = c.NeedsReview(s.classifier.Weights().ReviewThreshold)
		if c.Suggested != nil {
			record.AssetType = *c.Suggested
		}
	}
	res.Record = record

	if !record.Exportable() {
		return res, ErrNotExportable
	}
	assetType := record.EffectiveAssetType()
	res.Warnings = ValidateAssetType(record, assetType).Warnings
	if !taxonomy.IsKnown(assetType) {
		res.Warnings = append(res.Warnings,
			fmt.Sprintf("%q is not a known asset type; it exports as %s", assetType, taxonomy.ResolveCode(assetType)))
	}
	return res, nil
}

// commit checks res.Record against the register held by reg and appends it
// unless it is a duplicate and force is unset.
func (s *RegisterService) commit(reg *storage.RegisterTx, projectID string, res *IntakeResult, force bool) error {
	record := res.Record
	res.Duplicate = CheckDuplicate(record, reg.Records())
	if res.Duplicate.IsDuplicate && !force {
		s.log.Info("duplicate held back",
			zap.String("project", projectID),
			zap.String("model", record.Model),
			zap.String("kind", string(res.Duplicate.Kind)),
			zap.Int("index", res.Duplicate.Index))
		return nil
	}

	entry, err := reg.Append(record)
	if err != nil {
		return err
	}
	res.Appended = true
	res.Entry = &entry
	s.log.Info("equipment appended",
		zap.String("project", projectID),
		zap.Int("position", entry.Position),
		zap.String("assetType", record.AssetType),
		zap.Bool("forced", res.Duplicate.IsDuplicate))
	return nil
}

type ImportResult struct {
	Rows       int `json:"rows"`
	Appended   int `json:"appended"`
	Duplicates int `json:"duplicates"`
}

// ImportEquipmentList appends every row of a legacy equipment list workbook
// in one transaction. The workbook is rejected as a whole when any row is
// malformed or lacks the required fields, and a storage failure part way
// through leaves the register untouched. Rows are checked for duplicates
// against the register and the rows before them.
func (s *RegisterService) ImportEquipmentList(projectID string, content []byte, force bool) (ImportResult, error) {
	if _, err := s.db.MustProject(projectID); err != nil {
		return ImportResult{}, err
	}
	rows, err := ParseEquipmentListXLSX(content)
	if err != nil {
		return ImportResult{}, fmt.Errorf("%w: %w", ErrInvalidWorkbook, err)
	}

	prepared := make([]IntakeResult, 0, len(rows))
	for i, row := range rows {
		res, err := s.prepare(FromScannerData(row))
		if err != nil {
			return ImportResult{}, fmt.Errorf("row %d: %w", i+1, err)
		}
		prepared = append(prepared, res)
	}

	out := ImportResult{Rows: len(rows)}
	err = s.db.WithRegister(projectID, func(reg *storage.RegisterTx) error {
		out.Appended, out.Duplicates = 0, 0
		for i := range prepared {
			if err := s.commit(reg, projectID, &prepared[i], force); err != nil {
				return fmt.Errorf("row %d: %w", i+1, err)
			}
			if prepared[i].Appended {
				out.Appended++
			} else {
				out.Duplicates++
			}
		}
		return nil
	})
	if err != nil {
		return ImportResult{Rows: len(rows)}, err
	}
	s.log.Info("equipment list imported",
		zap.String("project", projectID),
		zap.Int("rows", out.Rows),
		zap.Int("appended", out.Appended),
		zap.Int("duplicates", out.Duplicates))
	return out, nil
}

type ExportResult struct {
	Project  internal.Project     `json:"project"`
	Rows     []internal.ExportRow `json:"rows"`
	Skipped  int                  `json:"skipped"`
	Filename string               `json:"filename"`
}

// ExportProject builds Master PMA rows for the exportable records of a
// project, in register order.
func (s *RegisterService) ExportProject(projectID string) (ExportResult, error) {
	start := time.Now()
	project, err := s.db.MustProject(projectID)
	if err != nil {
		return ExportResult{}, err
	}
	register, err := s.db.Register(projectID)
	if err != nil {
		return ExportResult{}, err
	}

	out := ExportResult{Project: project, Rows: []internal.ExportRow{}}
	for _, r := range register {
		if !r.Exportable() {
			out.Skipped++
			continue
		}
		out.Rows = append(out.Rows, ToExportRow(r))
	}
	out.Filename = GenerateExcelFilename(
		firstNonEmpty(project.Customer, s.cfg.DefaultCustomer),
		firstNonEmpty(project.Location, s.cfg.DefaultLocation),
	)

	trace := uuid.NewString()
	if err := s.db.InsertRun(trace, projectID, "export",
		map[string]float64{"totalMs": float64(time.Since(start).Milliseconds())},
		map[string]int{"rows": len(out.Rows), "skipped": out.Skipped}); err != nil {
		s.log.Warn("record export run", zap.String("trace", trace), zap.Error(err))
	}
	s.log.Info("project exported",
		zap.String("trace", trace),
		zap.String("project", projectID),
		zap.Int("rows", len(out.Rows)),
		zap.Int("skipped", out.Skipped))
	return out, nil
}

// ExportProjectToFile writes the project's workbook into dir (the configured
// output dir when empty) and returns its path.
func (s *RegisterService) ExportProjectToFile(projectID, dir string) (string, error) {
	res, err := s.ExportProject(projectID)
	if err != nil {
		return "", err
	}
	if dir == "" {
		dir = s.cfg.OutputDir
	}
	path := filepath.Join(dir, res.Filename)
	if err := ExportRowsToXLSX(res.Rows, path); err != nil {
		return "", err
	}
	return path, nil
}

// ExportEquipmentList writes the project's register in the legacy layout.
func (s *RegisterService) ExportEquipmentList(projectID, path string) error {
	if _, err := s.db.MustProject(projectID); err != nil {
		return err
	}
	register, err := s.db.Register(projectID)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteEquipmentList(f, register); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
