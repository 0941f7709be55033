package handler

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"escolaapi/internal/service"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var validate = validator.New(validator.WithRequiredStructEnabled())

// createAlunoRequest requires nome to be present; any string value, "" included, is stored as sent.
type createAlunoRequest struct {
	Nome *string `json:"nome" validate:"required"`
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, db *sql.DB, alunoSvc service.AlunoService) {
	app.Get("/health", HealthCheck())
	app.Get("/readyz", ReadinessCheck(db))

	api := app.Group("/api")
	api.Get("/alunos", ListAlunos(alunoSvc))
	api.Post("/alunos", CreateAluno(alunoSvc))
	api.Post("/alunos/import", ImportAlunos(alunoSvc))
	api.Get("/alunos/export", ExportAlunos(alunoSvc))
}

// HealthCheck reports that the process is up. It never touches dependencies.
//
//	@Summary	Liveness check
//	@Tags		health
//	@Produce	json
//	@Success	200	{object}	map[string]string
//	@Router		/health [get]
func HealthCheck() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	}
}

// ReadinessCheck checks database connectivity.
//
//	@Summary	Readiness check
//	@Tags		health
//	@Produce	json
//	@Success	200	{object}	map[string]string
//	@Failure	503	{object}	errorPayload
//	@Router		/readyz [get]
func ReadinessCheck(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
		}
		return c.JSON(fiber.Map{"status": "ready"})
	}
}

// ListAlunos returns every student, newest first.
//
//	@Summary	List students
//	@Tags		alunos
//	@Produce	json
//	@Success	200	{array}		model.Aluno
//	@Failure	500	{object}	errorPayload
//	@Router		/api/alunos [get]
func ListAlunos(svc service.AlunoService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		alunos, err := svc.List(c.UserContext())
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(alunos)
	}
}

// CreateAluno stores a new student.
//
//	@Summary	Create student
//	@Tags		alunos
//	@Accept		json
//	@Produce	json
//	@Param		body	body		createAlunoRequest	true	"student"
//	@Success	201		{object}	model.Aluno
//	@Failure	400		{object}	errorPayload
//	@Failure	500		{object}	errorPayload
//	@Router		/api/alunos [post]
func CreateAluno(svc service.AlunoService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req createAlunoRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		if err := validate.Struct(req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "VALIDATION_ERROR", "nome is required")
		}

		aluno, err := svc.Create(c.UserContext(), *req.Nome)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.Status(fiber.StatusCreated).JSON(aluno)
	}
}

// ImportAlunos creates students from an uploaded .xlsx workbook (multipart/form-data, field name: file).
//
//	@Summary	Import students from a spreadsheet
//	@Tags		alunos
//	@Accept		multipart/form-data
//	@Produce	json
//	@Param		file	formData	file	true	".xlsx workbook, names in column A"
//	@Success	200		{object}	service.ImportResult
//	@Failure	400		{object}	errorPayload
//	@Failure	415		{object}	errorPayload
//	@Failure	500		{object}	errorPayload
//	@Router		/api/alunos/import [post]
func ImportAlunos(svc service.AlunoService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
		}
		if !strings.EqualFold(filepath.Ext(fh.Filename), ".xlsx") {
			return writeError(c, fiber.StatusUnsupportedMediaType, "UNSUPPORTED_MEDIA_TYPE", "only .xlsx files are accepted")
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		res, err := svc.Import(c.UserContext(), f, fh.Filename)
		if err != nil {
			if errors.Is(err, service.ErrInvalidSpreadsheet) {
				return writeError(c, fiber.StatusBadRequest, "INVALID_SPREADSHEET", "file is not a readable .xlsx workbook")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(res)
	}
}

// ExportAlunos streams every student as an .xlsx attachment.
//
//	@Summary	Export students to a spreadsheet
//	@Tags		alunos
//	@Produce	application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
//	@Success	200	{file}		binary
//	@Failure	500	{object}	errorPayload
//	@Router		/api/alunos/export [get]
func ExportAlunos(svc service.AlunoService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var buf bytes.Buffer
		if err := svc.Export(c.UserContext(), &buf); err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		c.Attachment("alunos.xlsx")
		c.Set(fiber.HeaderContentType, xlsxContentType)
		return c.Send(buf.Bytes())
	}
}
