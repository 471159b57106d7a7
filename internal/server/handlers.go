package server

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/javajack/ssvfill"
)

const (
	xlsxContentType    = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	missingInputNotice = "please upload a file and fill all inputs to proceed"
)

// Response is the JSON envelope for non-file replies.
type Response struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func success(c *gin.Context) {
	c.JSON(http.StatusOK, Response{Code: 0, Message: "success"})
}

func failure(c *gin.Context, status int, msg string) {
	c.JSON(status, Response{Code: 1, Message: msg})
}

func (s *Server) health(c *gin.Context) {
	success(c)
}

// generate handles POST /api/generate. Required fields: file, product,
// start_indicator. Optional: insp_start, insp_end, multiplier,
// value_expression.
func (s *Server) generate(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.cfg.Server.MaxUploadSize)

	fh, fileErr := c.FormFile("file")
	var tooLarge *http.MaxBytesError
	if errors.As(fileErr, &tooLarge) {
		failure(c, http.StatusRequestEntityTooLarge, fmt.Sprintf("upload exceeds the %d byte limit", tooLarge.Limit))
		return
	}
	product := c.PostForm("product")
	startIndicator := c.PostForm("start_indicator")
	if fileErr != nil || product == "" || startIndicator == "" {
		failure(c, http.StatusBadRequest, missingInputNotice)
		return
	}

	p, err := s.formParams(c)
	if err != nil {
		failure(c, http.StatusUnprocessableEntity, err.Error())
		return
	}
	p.Product = product
	p.StartIndicator = startIndicator

	opts := append(s.cfg.Options(), ssvfill.WithLogger(s.logger))
	if e := c.PostForm("value_expression"); e != "" {
		opts = append(opts, ssvfill.WithValueExpression(e))
	}
	pl := ssvfill.NewPipeline(opts...)
	if err := ssvfill.FirstError(pl.Validate(p)); err != nil {
		failure(c, statusOf(err), err.Error())
		return
	}

	upload, err := fh.Open()
	if err != nil {
		failure(c, http.StatusBadRequest, fmt.Sprintf("open upload: %v", err))
		return
	}
	defer upload.Close()

	src, err := ssvfill.ReadMatrixFrom(upload)
	if err != nil {
		failure(c, statusOf(err), err.Error())
		return
	}
	res, err := pl.Run(src, p)
	if err != nil {
		failure(c, statusOf(err), err.Error())
		return
	}
	var buf bytes.Buffer
	if err := ssvfill.WriteSheet(res.Rows, &buf, s.cfg.Output.HeaderFill); err != nil {
		s.logger.Error("write sheet", zap.String("run_id", res.RunID), zap.Error(err))
		failure(c, http.StatusInternalServerError, "failed to write output workbook")
		return
	}

	c.Header("X-Run-ID", res.RunID)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", s.cfg.Output.FileName))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// formParams reads the optional numeric fields over the configured defaults.
func (s *Server) formParams(c *gin.Context) (ssvfill.Params, error) {
	p := s.cfg.Params()
	if v := c.PostForm("insp_start"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return p, fmt.Errorf("%w: insp_start: %q is not an integer", ssvfill.ErrInput, v)
		}
		p.InspStart = n
	}
	if v := c.PostForm("insp_end"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return p, fmt.Errorf("%w: insp_end: %q is not an integer", ssvfill.ErrInput, v)
		}
		p.InspEnd = n
	}
	if v := c.PostForm("multiplier"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return p, fmt.Errorf("%w: multiplier: %q is not a number", ssvfill.ErrInput, v)
		}
		p.Multiplier = f
	}
	return p, nil
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, ssvfill.ErrInput), errors.Is(err, ssvfill.ErrConfig), errors.Is(err, ssvfill.ErrSchema):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
