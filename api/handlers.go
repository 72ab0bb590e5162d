package api

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"pdf_util/pagespec"
	pdfPkg "pdf_util/pdf"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

func (s *Server) HandleMerge(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil || len(form.File[fieldPDF]) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No PDF files provided"})
		return
	}
	headers := form.File[fieldPDF]

	workDir, ok := s.workDir(c)
	if !ok {
		return
	}
	defer os.RemoveAll(workDir)

	inFiles := make([]string, len(headers))
	uploads := make(map[string]string, len(headers))
	for i, header := range headers {
		inFiles[i] = filepath.Join(workDir, fmt.Sprintf("input_%d.pdf", i))
		uploads[inFiles[i]] = sanitizeFilename(header.Filename)
		if err := s.saveUpload(header, inFiles[i]); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("%s: %v", sanitizeFilename(header.Filename), err)})
			return
		}
	}

	outFile := filepath.Join(workDir, "output_merged.pdf")
	if _, err := s.processor.Merge(inFiles, outFile); err != nil {
		s.operationFailed(c, err, workDir, uploads)
		return
	}

	s.sendPDF(c, outFile, downloadName(headers[0].Filename, "merged"))
}

func (s *Server) HandleRotate(c *gin.Context) {
	angle, err := strconv.Atoi(c.DefaultPostForm(fieldAngle, strconv.Itoa(pdfPkg.DefaultAngle)))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": pdfPkg.ErrInvalidAngle.Error()})
		return
	}
	pagesParam, ok := c.GetPostForm(fieldPages)
	if !ok {
		pagesParam = pdfPkg.AllPages
	}

	s.handlePDFFile(c, func(inFile, outFile string) error {
		_, err := s.processor.Rotate(inFile, outFile, angle, pagesParam)
		return err
	}, "rotated")
}

func (s *Server) HandleKeep(c *gin.Context) {
	pagesParam := c.PostForm(fieldPages)
	if strings.TrimSpace(pagesParam) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No pages specified"})
		return
	}

	s.handlePDFFile(c, func(inFile, outFile string) error {
		_, err := s.processor.Keep(inFile, outFile, pagesParam)
		return err
	}, "extracted")
}

func (s *Server) HandleInfo(c *gin.Context) {
	header, err := c.FormFile(fieldPDF)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No PDF file provided"})
		return
	}

	workDir, ok := s.workDir(c)
	if !ok {
		return
	}
	defer os.RemoveAll(workDir)

	inFile := filepath.Join(workDir, "input.pdf")
	if err := s.saveUpload(header, inFile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pageCount, err := s.processor.PageCount(inFile)
	if err != nil {
		s.operationFailed(c, err, workDir, map[string]string{inFile: sanitizeFilename(header.Filename)})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"filename":   sanitizeFilename(header.Filename),
		"page_count": pageCount,
	})
}

func (s *Server) handlePDFFile(c *gin.Context, operation func(string, string) error, suffix string) {
	header, err := c.FormFile(fieldPDF)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No PDF file provided"})
		return
	}

	workDir, ok := s.workDir(c)
	if !ok {
		return
	}
	defer os.RemoveAll(workDir)

	inFile := filepath.Join(workDir, "input.pdf")
	outFile := filepath.Join(workDir, "output_"+suffix+".pdf")

	if err := s.saveUpload(header, inFile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := operation(inFile, outFile); err != nil {
		s.operationFailed(c, err, workDir, map[string]string{inFile: sanitizeFilename(header.Filename)})
		return
	}

	s.sendPDF(c, outFile, downloadName(header.Filename, suffix))
}

// workDir creates a private directory for one request's files. On failure the
// response has already been written.
func (s *Server) workDir(c *gin.Context) (string, bool) {
	dir := filepath.Join(s.config.TempDir, uuid.NewString())
	if err := os.MkdirAll(dir, DefaultFilePermissions); err != nil {
		s.log.WithError(err).Error("Failed to create temp directory")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create temp directory"})
		return "", false
	}
	return dir, true
}

// saveUpload validates an uploaded file and stores it at path.
func (s *Server) saveUpload(header *multipart.FileHeader, path string) error {
	file, err := header.Open()
	if err != nil {
		return fmt.Errorf("failed to read upload: %w", err)
	}
	defer file.Close()

	if err := validatePDFFile(file, header, s.config.MaxFileSize); err != nil {
		return err
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to save file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, file); err != nil {
		return fmt.Errorf("failed to save file: %w", err)
	}
	return out.Close()
}

// operationFailed reports err to the client with the work directory paths in
// it replaced by the names the files were uploaded under.
func (s *Server) operationFailed(c *gin.Context, err error, workDir string, uploads map[string]string) {
	status := statusForError(err)
	s.log.WithError(err).WithField("status", status).Warn("PDF operation failed")
	c.Error(err)

	errorMsg := err.Error()
	for path, name := range uploads {
		errorMsg = strings.ReplaceAll(errorMsg, path, name)
	}
	errorMsg = strings.ReplaceAll(errorMsg, workDir+string(filepath.Separator), "")

	c.JSON(status, gin.H{"error": truncateMessage(errorMsg, MaxErrorLength)})
}

// truncateMessage shortens msg to at most limit bytes plus an ellipsis without
// splitting a UTF-8 sequence.
func truncateMessage(msg string, limit int) string {
	if len(msg) <= limit {
		return msg
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(msg[cut]) {
		cut--
	}
	return msg[:cut] + "..."
}

func (s *Server) sendPDF(c *gin.Context, outFile, filename string) {
	if _, err := os.Stat(outFile); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "PDF operation did not produce output file"})
		return
	}

	s.log.WithFields(logrus.Fields{"download": filename}).Debug("Sending result")
	c.Header("Content-Type", "application/pdf")
	c.FileAttachment(outFile, filename)
}

// statusForError maps client mistakes to 400 and everything else to 500.
func statusForError(err error) int {
	var (
		malformed    *pagespec.MalformedRangeError
		invalidPage  *pagespec.InvalidPageError
		invalidRange *pagespec.InvalidRangeError
		unreadable   *pdfPkg.DocumentError
	)
	switch {
	case errors.As(err, &malformed),
		errors.As(err, &unreadable),
		errors.As(err, &invalidPage),
		errors.As(err, &invalidRange),
		errors.Is(err, pdfPkg.ErrInvalidAngle),
		errors.Is(err, pdfPkg.ErrNotPDF):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// downloadName derives the attachment name from the uploaded file name.
func downloadName(originalName, suffix string) string {
	if originalName == "" {
		return "document_" + suffix + ".pdf"
	}
	if strings.HasSuffix(strings.ToLower(originalName), ".pdf") {
		originalName = originalName[:len(originalName)-4]
	}
	return sanitizeFilename(originalName + "_" + suffix + ".pdf")
}

// sanitizeFilename removes path traversal attempts and dangerous characters
func sanitizeFilename(filename string) string {
	filename = strings.ReplaceAll(filename, "..", "")
	filename = strings.ReplaceAll(filename, "/", "_")
	filename = strings.ReplaceAll(filename, "\\", "_")
	filename = filepath.Base(filename)
	filename = strings.TrimSpace(filename)

	if filename == "" || filename == "." {
		filename = "document.pdf"
	}
	return filename
}

// validatePDFFile checks the upload size and the %PDF header
func validatePDFFile(file multipart.File, header *multipart.FileHeader, maxSize int64) error {
	if header.Size > maxSize {
		return fmt.Errorf("file size %d exceeds maximum allowed %d bytes", header.Size, maxSize)
	}

	buffer := make([]byte, 4)
	n, err := io.ReadFull(file, buffer)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return fmt.Errorf("failed to read file header: %v", err)
	}
	if n < 4 || string(buffer) != "%PDF" {
		return fmt.Errorf("invalid PDF file: header does not match")
	}

	// Seek back to beginning for subsequent reads
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("failed to reset file position: %v", err)
	}
	return nil
}
