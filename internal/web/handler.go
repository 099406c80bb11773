package web

import (
	"bytes"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"strings"

	"github.com/labstack/echo/v4"

	ndr "github.com/gondr/validator"
	"github.com/gondr/validator/document"
	"github.com/gondr/validator/pkg/strictdate"
)

// patientBio is the display form of the extracted demographics. Absent
// values render as "N/A", matching the report layout.
type patientBio struct {
	PatientID      string
	HospitalNumber string
	TBIdentifier   string
	Sex            string
	DateOfBirth    string
	ReportedAge    string
	ReportDate     string
	FacilityName   string
	FacilityID     string
}

// pageData feeds the index template.
type pageData struct {
	RulesRevision string
	ErrorMessage  string
	HasResults    bool
	Patient       patientBio
	ARTStart      string
	Issues        []string
}

func (s *Server) handleIndex(c echo.Context) error {
	return s.render(c, pageData{RulesRevision: ndr.RulesRevision})
}

// handleUpload accepts one multipart .xml file, stages it in a temp file
// that is removed on every exit path, and renders the validation report.
func (s *Server) handleUpload(c echo.Context) error {
	data := pageData{RulesRevision: ndr.RulesRevision}

	fh, err := c.FormFile("file")
	if err != nil || fh.Filename == "" {
		data.ErrorMessage = "❌ No file selected."
		return s.render(c, data)
	}
	if !strings.HasSuffix(strings.ToLower(fh.Filename), ".xml") {
		data.ErrorMessage = "❌ Only .xml files are accepted."
		return s.render(c, data)
	}

	path, err := s.stage(fh)
	if err != nil {
		s.log.Error().Err(err).Msg("staging upload failed")
		data.ErrorMessage = "❌ Unexpected error processing file."
		return s.render(c, data)
	}
	defer os.Remove(path)

	f, err := os.Open(path)
	if err != nil {
		s.log.Error().Err(err).Msg("reopening staged upload failed")
		data.ErrorMessage = "❌ Unexpected error processing file."
		return s.render(c, data)
	}
	defer f.Close()

	record, result, err := s.validator.ValidateReader(c.Request().Context(), f)
	if err != nil {
		var malformed *document.MalformedInputError
		if errors.As(err, &malformed) {
			data.ErrorMessage = "❌ Uploaded file is not well-formed XML."
		} else {
			s.log.Error().Err(err).Msg("validation failed")
			data.ErrorMessage = "❌ Unexpected error processing file."
		}
		return s.render(c, data)
	}
	defer result.Release()

	data.HasResults = true
	data.Patient = bio(record)
	data.ARTStart = "N/A"
	if record.Art.StartDate != nil {
		data.ARTStart = strictdate.Format(*record.Art.StartDate)
	}
	data.Issues = result.Strings()

	return s.render(c, data)
}

// stage copies the uploaded file to a temp file and returns its path. The
// caller removes the file.
func (s *Server) stage(fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	tmp, err := os.CreateTemp(s.cfg.TempDir, "ndr-upload-*.xml")
	if err != nil {
		return "", err
	}

	if _, err := io.Copy(tmp, src); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}
	return tmp.Name(), nil
}

func (s *Server) render(c echo.Context, data pageData) error {
	var buf bytes.Buffer
	if err := s.tmpl.ExecuteTemplate(&buf, "index.html", data); err != nil {
		return err
	}
	return c.HTMLBlob(http.StatusOK, buf.Bytes())
}

func bio(record *ndr.ClinicalRecord) patientBio {
	p := record.Patient
	return patientBio{
		PatientID:      display(p.PatientID),
		HospitalNumber: display(p.HospitalNumber),
		TBIdentifier:   display(p.TBIdentifier),
		Sex:            display(p.Sex),
		DateOfBirth:    display(p.DateOfBirth),
		ReportedAge:    display(p.ReportedAge),
		ReportDate:     display(p.ReportDate),
		FacilityName:   display(p.FacilityName),
		FacilityID:     display(p.FacilityID),
	}
}

func display(p *string) string {
	if p == nil || *p == "" {
		return "N/A"
	}
	return *p
}
