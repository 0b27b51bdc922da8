package httpapi

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/custodia-labs/mevzuat-cli/internal/core/domain"
	"github.com/custodia-labs/mevzuat-cli/internal/core/ports/driving"
)

// askRequest is the JSON body of POST /ask.
type askRequest struct {
	Question  string   `json:"question"`
	Sources   []string `json:"sources"`
	Threshold *float64 `json:"threshold"`
}

// searchRequest is the JSON body of POST /search.
type searchRequest struct {
	Query   string   `json:"query"`
	Sources []string `json:"sources"`
}

type searchResponse struct {
	Results []domain.RegulationRecord `json:"results"`
	Count   int                       `json:"count"`
}

type historyResponse struct {
	Entries []domain.HistoryEntry `json:"entries"`
	Count   int                   `json:"count"`
}

type extractResponse struct {
	FileType domain.FileType `json:"file_type"`
	Text     string          `json:"text"`
}

// sourceFlags are the boolean form fields that select a source.
var sourceFlags = []struct {
	field  string
	source domain.SourceName
}{
	{"mevzuat", domain.SourceMevzuat},
	{"resmigazete", domain.SourceResmiGazete},
	{"gib", domain.SourceGIB},
	{"mevbank", domain.SourceMevbank},
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleAsk(c *gin.Context) {
	var (
		req driving.AskRequest
		err error
	)
	if c.ContentType() == gin.MIMEMultipartPOSTForm {
		req, err = parseAskForm(c)
	} else {
		req, err = parseAskJSON(c)
	}
	if err != nil {
		writeError(c, err)
		return
	}

	resp, err := s.ports.Assistant.Ask(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleSearch(c *gin.Context) {
	var body searchRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		writeError(c, fmt.Errorf("%w: %w", domain.ErrInvalidInput, err))
		return
	}

	query := strings.TrimSpace(body.Query)
	if query == "" {
		writeError(c, fmt.Errorf("%w: empty query", domain.ErrInvalidInput))
		return
	}

	sources := domain.AllSources()
	if len(body.Sources) > 0 {
		var err error
		if sources, err = domain.ParseSourceNames(body.Sources); err != nil {
			writeError(c, err)
			return
		}
	}

	results := s.ports.Regulations.Search(c.Request.Context(), query, sources)
	c.JSON(http.StatusOK, searchResponse{Results: results, Count: len(results)})
}

func (s *Server) handleExtract(c *gin.Context) {
	content, fileType, err := readUpload(c)
	if err != nil {
		writeError(c, err)
		return
	}
	if content == nil {
		writeError(c, fmt.Errorf("%w: missing file", domain.ErrInvalidInput))
		return
	}

	text, err := s.ports.Documents.Extract(c.Request.Context(), content, fileType)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, extractResponse{FileType: fileType, Text: text})
}

func (s *Server) handleHistory(c *gin.Context) {
	limit := domain.DefaultHistoryLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			writeError(c, fmt.Errorf("%w: limit %q", domain.ErrInvalidInput, raw))
			return
		}
		limit = n
	}

	entries, err := s.ports.History.Recent(c.Request.Context(), limit)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, historyResponse{Entries: entries, Count: len(entries)})
}

func parseAskJSON(c *gin.Context) (driving.AskRequest, error) {
	var body askRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		return driving.AskRequest{}, fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	}

	sources, err := domain.ParseSourceNames(body.Sources)
	if err != nil {
		return driving.AskRequest{}, err
	}
	if body.Threshold != nil {
		if err := checkThreshold(*body.Threshold); err != nil {
			return driving.AskRequest{}, err
		}
	}

	return driving.AskRequest{
		Question:  body.Question,
		Sources:   sources,
		Threshold: body.Threshold,
	}, nil
}

func parseAskForm(c *gin.Context) (driving.AskRequest, error) {
	req := driving.AskRequest{Question: c.PostForm("question")}

	sources, err := domain.ParseSourceNames(c.PostFormArray("source"))
	if err != nil {
		return driving.AskRequest{}, err
	}
	for _, flag := range sourceFlags {
		if formBool(c.PostForm(flag.field)) {
			sources = append(sources, flag.source)
		}
	}
	req.Sources = sources

	if raw := c.PostForm("threshold"); raw != "" {
		threshold, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return driving.AskRequest{}, fmt.Errorf("%w: threshold %q", domain.ErrInvalidInput, raw)
		}
		if err := checkThreshold(threshold); err != nil {
			return driving.AskRequest{}, err
		}
		req.Threshold = &threshold
	}

	content, fileType, err := readUpload(c)
	if err != nil {
		return driving.AskRequest{}, err
	}
	req.Document = content
	req.DocumentType = fileType

	return req, nil
}

// readUpload returns the uploaded file and its type. A missing file yields nil content.
// The type comes from the file_type field, the file extension or the part's content type.
func readUpload(c *gin.Context) ([]byte, domain.FileType, error) {
	header, err := c.FormFile("file")
	if errors.Is(err, http.ErrMissingFile) {
		return nil, "", nil
	}
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	}

	fileType, err := domain.ParseFileType(c.PostForm("file_type"))
	if err != nil && c.PostForm("file_type") == "" {
		fileType, err = domain.FileTypeFromPath(header.Filename)
		if err != nil {
			fileType, err = domain.ParseFileType(header.Header.Get("Content-Type"))
		}
	}
	if err != nil {
		return nil, "", err
	}

	file, err := header.Open()
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	}
	defer file.Close()

	content, err := io.ReadAll(io.LimitReader(file, maxUploadBytes+1))
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	}
	if len(content) > maxUploadBytes {
		return nil, "", fmt.Errorf("%w: file larger than %d bytes", domain.ErrInvalidInput, maxUploadBytes)
	}
	return content, fileType, nil
}

func checkThreshold(threshold float64) error {
	if threshold < 0 || threshold > 1 {
		return fmt.Errorf("%w: threshold %.2f outside [0,1]", domain.ErrInvalidInput, threshold)
	}
	return nil
}

// formBool accepts the values browsers and curl send for checked boxes.
func formBool(value string) bool {
	if strings.EqualFold(value, "on") {
		return true
	}
	b, err := strconv.ParseBool(value)
	return err == nil && b
}
