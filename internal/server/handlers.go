package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hvacscan/internal"
	"hvacscan/internal/manuals"
	"hvacscan/internal/pipeline"
	"hvacscan/internal/storage"
	"hvacscan/internal/taxonomy"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func (s *Server) getMasterPMA(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"equipmentTypes":    taxonomy.KnownTypes(),
		"equipmentCodes":    taxonomy.Codes(),
		"equipmentFeatures": taxonomy.Table(),
	})
}

type masterPMARequest struct {
	ScannerDataList json.RawMessage `json:"scannerDataList"`
	CustomerName    string          `json:"customerName"`
	LocationName    string          `json:"locationName"`
}

// postMasterPMA converts a legacy scanner batch into a Master PMA workbook,
// or tab-separated text with ?format=tsv.
func (s *Server) postMasterPMA(c *gin.Context) {
	var req masterPMARequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if len(bytes.TrimSpace(req.ScannerDataList)) == 0 || bytes.TrimSpace(req.ScannerDataList)[0] != '[' {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: scannerDataList must be an array"})
		return
	}

	batch, err := pipeline.DecodeScannerBatch(req.ScannerDataList)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rows := make([]internal.ExportRow, 0, len(batch))
	for _, item := range batch {
		rows = append(rows, pipeline.ToExportRow(pipeline.FromScannerData(item)))
	}

	if c.Query("format") == "tsv" {
		c.Data(http.StatusOK, "text/tab-separated-values; charset=utf-8", []byte(pipeline.SerializeTabular(rows, true)))
		return
	}

	customer := firstNonEmpty(req.CustomerName, s.cfg.DefaultCustomer, "Customer")
	location := firstNonEmpty(req.LocationName, s.cfg.DefaultLocation, "Location")
	s.writeWorkbook(c, pipeline.GenerateExcelFilename(customer, location), rows)
}

func (s *Server) writeWorkbook(c *gin.Context, filename string, rows []internal.ExportRow) {
	buf := bytes.NewBuffer(nil)
	if err := pipeline.WriteMasterPMA(buf, rows); err != nil {
		s.log.Error("write workbook", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to convert data to Master PMA format"})
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Cache-Control", "no-cache")
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

type classifyResponse struct {
	Classification pipeline.Classification  `json:"classification"`
	Suggestions    []pipeline.Suggestion    `json:"suggestions"`
	NeedsReview    bool                     `json:"needsReview"`
	Validation     *pipeline.AssetTypeCheck `json:"validation,omitempty"`
}

func (s *Server) classify(c *gin.Context) {
	var record internal.EquipmentRecord
	if err := c.ShouldBindJSON(&record); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid equipment record"})
		return
	}

	classifier := s.register.Classifier()
	result := classifier.Classify(record)
	resp := classifyResponse{
		Classification: result,
		Suggestions:    classifier.SuggestWithExplanation(record),
		NeedsReview:    result.NeedsReview(classifier.Weights().ReviewThreshold),
	}
	if record.AssetType != "" {
		check := pipeline.ValidateAssetType(record, record.EffectiveAssetType())
		resp.Validation = &check
	}
	c.JSON(http.StatusOK, resp)
}

type duplicateRequest struct {
	Equipment internal.EquipmentRecord   `json:"equipment"`
	Register  []internal.EquipmentRecord `json:"register"`
	ProjectID string                     `json:"projectId"`
}

// checkDuplicates compares a record against the given register, or the
// stored register of projectId when one is named.
func (s *Server) checkDuplicates(c *gin.Context) {
	var req duplicateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	register := req.Register
	if req.ProjectID != "" {
		if _, err := s.db.MustProject(req.ProjectID); err != nil {
			s.fail(c, err)
			return
		}
		stored, err := s.db.Register(req.ProjectID)
		if err != nil {
			s.fail(c, err)
			return
		}
		register = stored
	}

	result := pipeline.CheckDuplicate(req.Equipment, register)
	c.JSON(http.StatusOK, gin.H{
		"isDuplicate":       result.IsDuplicate,
		"duplicateType":     result.Kind,
		"existingEquipment": result.Matched,
		"index":             result.Index,
		"description":       result.Kind.Description(),
	})
}

type manualRequest struct {
	Manufacturer string `json:"manufacturer"`
	Model        string `json:"model"`
	SerialNumber string `json:"serialNumber"`
}

func (s *Server) searchManual(c *gin.Context) {
	var req manualRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	links, err := manuals.Search(req.Manufacturer, req.Model)
	if errors.Is(err, manuals.ErrMissingInput) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Manufacturer and model are required"})
		return
	}
	if err != nil {
		s.fail(c, err)
		return
	}

	s.log.Debug("manual links", zap.String("manufacturer", req.Manufacturer), zap.String("model", req.Model), zap.Int("count", len(links)))
	c.JSON(http.StatusOK, gin.H{
		"manufacturer":    req.Manufacturer,
		"model":           req.Model,
		"serialNumber":    req.SerialNumber,
		"manualLinks":     links,
		"searchTimestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) parseExtraction(c *gin.Context) {
	var req struct {
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	record, err := pipeline.ParseExtraction(req.Text)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	classifier := s.register.Classifier()
	c.JSON(http.StatusOK, gin.H{
		"equipment":   record,
		"suggestions": classifier.SuggestWithExplanation(record),
	})
}

func (s *Server) listProjects(c *gin.Context) {
	projects, err := s.db.ListProjects()
	if err != nil {
		s.fail(c, err)
		return
	}
	if projects == nil {
		projects = []internal.Project{}
	}
	c.JSON(http.StatusOK, gin.H{"projects": projects})
}

func (s *Server) createProject(c *gin.Context) {
	var req struct {
		Customer string `json:"customer"`
		Location string `json:"location"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Customer == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "customer is required"})
		return
	}

	p, err := s.db.CreateProject(req.Customer, req.Location)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (s *Server) listEquipment(c *gin.Context) {
	id := c.Param("id")
	if _, err := s.db.MustProject(id); err != nil {
		s.fail(c, err)
		return
	}
	entries, err := s.db.ListEquipment(id)
	if err != nil {
		s.fail(c, err)
		return
	}
	if entries == nil {
		entries = []internal.RegisterEntry{}
	}
	c.JSON(http.StatusOK, gin.H{"equipment": entries})
}

type addEquipmentRequest struct {
	Equipment internal.EquipmentRecord `json:"equipment"`
	Force     bool                     `json:"force"`
}

func (s *Server) addEquipment(c *gin.Context) {
	var req addEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	res, err := s.register.Intake(c.Param("id"), req.Equipment, req.Force)
	switch {
	case errors.Is(err, pipeline.ErrNotExportable):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error(), "result": res})
	case err != nil:
		s.fail(c, err)
	case !res.Appended:
		c.JSON(http.StatusConflict, gin.H{"error": res.Duplicate.Kind.Description(), "result": res})
	default:
		c.JSON(http.StatusCreated, res)
	}
}

func (s *Server) importEquipmentList(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	f, err := file.Open()
	if err != nil {
		s.fail(c, err)
		return
	}
	defer f.Close()
	content, err := io.ReadAll(f)
	if err != nil {
		s.fail(c, err)
		return
	}

	res, err := s.register.ImportEquipmentList(c.Param("id"), content, c.Query("force") == "true")
	if err != nil {
		if errors.Is(err, pipeline.ErrInvalidWorkbook) || errors.Is(err, pipeline.ErrNotExportable) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// exportProject serves the project's Master PMA rows as xlsx (default),
// tsv or json.
func (s *Server) exportProject(c *gin.Context) {
	res, err := s.register.ExportProject(c.Param("id"))
	if err != nil {
		s.fail(c, err)
		return
	}

	switch c.DefaultQuery("format", "xlsx") {
	case "tsv":
		c.Data(http.StatusOK, "text/tab-separated-values; charset=utf-8", []byte(pipeline.SerializeTabular(res.Rows, c.Query("headers") != "false")))
	case "json":
		c.JSON(http.StatusOK, res)
	default:
		s.writeWorkbook(c, res.Filename, res.Rows)
	}
}

func (s *Server) fail(c *gin.Context, err error) {
	if errors.Is(err, storage.ErrProjectNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	s.log.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
