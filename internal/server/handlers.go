package server

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/minwe11/vendorsheet-go/pkg/vendorsheet"
	"github.com/minwe11/vendorsheet-go/pkg/vendorsheet/loader"
	"github.com/minwe11/vendorsheet-go/pkg/vendorsheet/models"
	"github.com/minwe11/vendorsheet-go/pkg/vendorsheet/output"
)

// configPayload mirrors the image configuration step of the UI.
type configPayload struct {
	BaseURL        string            `json:"baseUrl"`
	ImageLang      string            `json:"imageLang"`
	VendorPrefixes map[string]string `json:"vendorPrefixes"`
}

type workbookState struct {
	ID          string             `json:"id"`
	FileName    string             `json:"fileName"`
	Sheets      []models.SheetInfo `json:"sheets"`
	Config      configPayload      `json:"config"`
	HasDocument bool               `json:"hasDocument"`
}

func stateOf(sess *Session) workbookState {
	return workbookState{
		ID:       sess.ID,
		FileName: sess.FileName,
		Sheets:   sess.Infos,
		Config: configPayload{
			BaseURL:        sess.Options.BaseURL,
			ImageLang:      sess.Options.ImageLang,
			VendorPrefixes: sess.Options.VendorPrefixes,
		},
		HasDocument: sess.Document != nil,
	}
}

// handleUpload decodes an uploaded workbook, discovers its tabs and opens
// a new session with every tab selected and default vendor prefixes.
func (s *Server) handleUpload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please upload an Excel file first."})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Error reading file."})
		return
	}
	defer f.Close()

	sheets, err := loader.ReadWorkbook(f)
	if err != nil {
		// The decoder's failure detail is logged, never shown to the user.
		log.Printf("workbook decode failed for %q: %v", fileHeader.Filename, err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read Excel file."})
		return
	}

	discovery := loader.Discover(sheets)
	opts := vendorsheet.Options{
		BaseURL:        s.cfg.Convert.BaseURL,
		ImageLang:      s.cfg.Convert.ImageLang,
		VendorPrefixes: discovery.VendorPrefixes,
	}

	id := s.store.Create(fileHeader.Filename, sheets, discovery.Sheets, opts)

	var state workbookState
	s.store.View(id, func(sess *Session) { state = stateOf(sess) })
	c.JSON(http.StatusCreated, state)
}

func (s *Server) handleState(c *gin.Context) {
	var state workbookState
	if !s.store.View(c.Param("id"), func(sess *Session) { state = stateOf(sess) }) {
		c.JSON(http.StatusNotFound, gin.H{"error": "workbook session not found"})
		return
	}
	c.JSON(http.StatusOK, state)
}

func (s *Server) handleReset(c *gin.Context) {
	s.store.Delete(c.Param("id"))
	c.Status(http.StatusNoContent)
}

// handleSelection replaces the set of selected tabs.
func (s *Server) handleSelection(c *gin.Context) {
	var req struct {
		Selected []string `json:"selected"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid selection payload"})
		return
	}

	selected := make(map[string]bool, len(req.Selected))
	for _, name := range req.Selected {
		selected[name] = true
	}

	unknown := ""
	ok := s.store.Update(c.Param("id"), func(sess *Session) {
		known := make(map[string]bool, len(sess.Infos))
		for i := range sess.Infos {
			known[sess.Infos[i].Name] = true
		}
		for name := range selected {
			if !known[name] {
				unknown = name
				return
			}
		}
		for i := range sess.Infos {
			sess.Infos[i].Selected = selected[sess.Infos[i].Name]
		}
	})
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "workbook session not found"})
		return
	}
	if unknown != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown sheet: " + unknown})
		return
	}

	var state workbookState
	s.store.View(c.Param("id"), func(sess *Session) { state = stateOf(sess) })
	c.JSON(http.StatusOK, state)
}

// handleConfig applies the fields present in the payload; omitted fields
// keep their current value.
func (s *Server) handleConfig(c *gin.Context) {
	var req struct {
		BaseURL        *string           `json:"baseUrl"`
		ImageLang      *string           `json:"imageLang"`
		VendorPrefixes map[string]string `json:"vendorPrefixes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid config payload"})
		return
	}

	ok := s.store.Update(c.Param("id"), func(sess *Session) {
		if req.BaseURL != nil {
			sess.Options.BaseURL = *req.BaseURL
		}
		if req.ImageLang != nil {
			sess.Options.ImageLang = *req.ImageLang
		}
		if req.VendorPrefixes != nil {
			if sess.Options.VendorPrefixes == nil {
				sess.Options.VendorPrefixes = make(map[string]string)
			}
			for vendor, prefix := range req.VendorPrefixes {
				sess.Options.VendorPrefixes[vendor] = prefix
			}
		}
	})
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "workbook session not found"})
		return
	}

	var state workbookState
	s.store.View(c.Param("id"), func(sess *Session) { state = stateOf(sess) })
	c.JSON(http.StatusOK, state)
}

// handleConvert checks the user-facing preconditions, runs the batch over
// the selected tabs and caches the produced document in the session.
func (s *Server) handleConvert(c *gin.Context) {
	var (
		docJSON []byte
		skips   []vendorsheet.SheetSkip
		precond string
	)

	ok := s.store.Update(c.Param("id"), func(sess *Session) {
		var selected []models.Sheet
		byName := make(map[string]models.Sheet, len(sess.Sheets))
		for _, sheet := range sess.Sheets {
			byName[sheet.Name] = sheet
		}
		for _, info := range sess.Infos {
			if info.Selected {
				selected = append(selected, byName[info.Name])
			}
		}
		if len(selected) == 0 {
			precond = "Please select at least one tab to convert."
			return
		}
		if err := sess.Options.Validate(); err != nil {
			precond = "Please enter Base URL before converting."
			return
		}

		doc, skipped := vendorsheet.ConvertBatch(selected, sess.Options)
		skips = skipped

		data, err := output.ToJSON(doc, true)
		if err != nil {
			// Cannot happen for this document shape; treated as empty output.
			log.Printf("marshal export document: %v", err)
			return
		}
		docJSON = data
		sess.Document = data
	})
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "workbook session not found"})
		return
	}
	if precond != "" {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": precond})
		return
	}

	for _, skip := range skips {
		log.Println(skip.String())
	}
	if skips == nil {
		skips = []vendorsheet.SheetSkip{}
	}
	c.JSON(http.StatusOK, gin.H{
		"document": json.RawMessage(docJSON),
		"skipped":  skips,
	})
}

// handleEditDocument stores a user-edited document. It must be valid JSON;
// its shape is not re-validated, matching the free-form edit step.
func (s *Server) handleEditDocument(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil || !json.Valid(body) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "edited document is not valid JSON"})
		return
	}
	if !s.store.Update(c.Param("id"), func(sess *Session) { sess.Document = body }) {
		c.JSON(http.StatusNotFound, gin.H{"error": "workbook session not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

// handleDownload serves the latest document, edited version included.
func (s *Server) handleDownload(c *gin.Context) {
	var doc []byte
	ok := s.store.View(c.Param("id"), func(sess *Session) { doc = sess.Document })
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "workbook session not found"})
		return
	}
	if doc == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no document yet; convert selected tabs first"})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="vendors-games.json"`)
	c.Data(http.StatusOK, "application/json", doc)
}
