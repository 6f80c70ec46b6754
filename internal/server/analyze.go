package server

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/esgsentinel/sentinel/constants"
	"github.com/esgsentinel/sentinel/internal/common"
)

// handleAnalyze accepts a multipart document upload and returns the
// full analysis response.
func (s *Service) handleAnalyze(c *gin.Context) {
	filename, data, err := s.readUpload(c)
	if err != nil {
		s.respondError(c, err)
		return
	}

	res, err := s.processor.Process(c.Request.Context(), filename, data)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// handleExport runs the same analysis but responds with the XLSX
// evidence workbook instead of JSON.
func (s *Service) handleExport(c *gin.Context) {
	filename, data, err := s.readUpload(c)
	if err != nil {
		s.respondError(c, err)
		return
	}

	res, err := s.processor.Process(c.Request.Context(), filename, data)
	if err != nil {
		s.respondError(c, err)
		return
	}

	workbook, err := s.exporter.AnalysisXLSX(res)
	if err != nil {
		s.logger.Error("export failed", zap.String("filename", filename), zap.Error(err))
		s.respondError(c, common.WrapError(common.ErrInternal, "export workbook"))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename+".xlsx"))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", workbook)
}

// readUpload validates and reads the multipart "file" field.
func (s *Service) readUpload(c *gin.Context) (string, []byte, error) {
	fh, err := c.FormFile("file")
	if err != nil {
		return "", nil, common.NewAppError("UPLOAD_ERROR", "multipart field 'file' is required", common.ErrInvalidInput)
	}

	ext := constants.NormalizeExt(filepath.Ext(fh.Filename))
	if _, ok := constants.AllowedExtensions[ext]; !ok {
		return "", nil, common.NewAppError("UPLOAD_ERROR",
			fmt.Sprintf("unsupported file type %q", ext), common.ErrInvalidInput)
	}
	if fh.Size > s.cfg.MaxUploadBytes {
		return "", nil, common.NewAppError("UPLOAD_ERROR",
			fmt.Sprintf("file exceeds upload limit of %d bytes", s.cfg.MaxUploadBytes), common.ErrInvalidInput)
	}

	f, err := fh.Open()
	if err != nil {
		return "", nil, common.WrapError(err, "open upload")
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, s.cfg.MaxUploadBytes+1))
	if err != nil {
		return "", nil, common.WrapError(err, "read upload")
	}
	if int64(len(data)) > s.cfg.MaxUploadBytes {
		return "", nil, common.NewAppError("UPLOAD_ERROR",
			fmt.Sprintf("file exceeds upload limit of %d bytes", s.cfg.MaxUploadBytes), common.ErrInvalidInput)
	}
	return fh.Filename, data, nil
}
