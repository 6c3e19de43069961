package controllers

import (
	"errors"
	"io"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"repuestos-web/middlewares"
	"repuestos-web/services"
)

const msgMissingFields = "Falta Código Wiener o Nombre."

// AddPartForm carries the multipart add-form fields. The image rides
// separately as the "image" file field.
type AddPartForm struct {
	VendorCode   string `form:"codigo_wiener" validate:"required,min=1"`
	OriginalCode string `form:"codigo_original" validate:"omitempty"`
	Name         string `form:"nombre" validate:"required,min=1"`
	Description  string `form:"descripcion" validate:"omitempty"`
	Equipment    string `form:"equipo" validate:"omitempty"`
	Notes        string `form:"notas" validate:"omitempty"`
	Status       string `form:"estado" validate:"omitempty"`
}

// PartController serves the search, add and delete pages.
type PartController struct {
	Parts *services.PartService
	Store *session.Store
}

func NewPartController(parts *services.PartService, store *session.Store) *PartController {
	return &PartController{Parts: parts, Store: store}
}

// GET /search
func (ct *PartController) SearchGet(c *fiber.Ctx) error {
	sess, err := ct.Store.Get(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "session unavailable")
	}
	ok, errMsg := takeFlashes(sess)
	if err := sess.Save(); err != nil {
		return err
	}
	return c.Render("search", fiber.Map{"Ok": ok, "Error": errMsg, "Query": ""})
}

// POST /search
func (ct *PartController) SearchPost(c *fiber.Ctx) error {
	q := strings.TrimSpace(c.FormValue("query"))

	part, err := ct.Parts.Search(q)
	switch {
	case errors.Is(err, services.ErrEmptyQuery):
		return c.Render("search", fiber.Map{"Error": "Ingresá un código para buscar.", "Query": ""})
	case err != nil:
		return err
	case part == nil:
		return c.Render("search", fiber.Map{"Error": "No se encontró ese código.", "Query": q})
	}
	return c.Render("search", fiber.Map{"Ok": "Repuesto encontrado", "Part": part, "Query": q})
}

// GET /add
func (ct *PartController) AddGet(c *fiber.Ctx) error {
	return c.Render("add", fiber.Map{})
}

// POST /add — outcomes render on the same view, no redirect.
func (ct *PartController) AddPost(c *fiber.Ctx) error {
	var in AddPartForm
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			return c.Render("add", fiber.Map{"Error": msgMissingFields})
		}
		return err
	}

	input := services.PartInput{
		VendorCode:   in.VendorCode,
		OriginalCode: in.OriginalCode,
		Name:         in.Name,
		Description:  in.Description,
		Equipment:    in.Equipment,
		Notes:        in.Notes,
		Status:       in.Status,
	}

	if fh, err := c.FormFile("image"); err == nil && fh != nil && fh.Filename != "" {
		f, err := fh.Open()
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "could not read uploaded image")
		}
		content, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "could not read uploaded image")
		}
		input.ImageFilename = fh.Filename
		input.ImageContent = content
	}

	_, err := ct.Parts.Create(input)
	switch {
	case errors.Is(err, services.ErrMissingFields):
		return c.Render("add", fiber.Map{"Error": msgMissingFields})
	case errors.Is(err, services.ErrBadImageType):
		return c.Render("add", fiber.Map{"Error": "Formato de imagen no permitido."})
	case errors.Is(err, services.ErrDuplicateCode):
		return c.Render("add", fiber.Map{"Error": "Ese código ya existe."})
	case err != nil:
		return err
	}
	return c.Render("add", fiber.Map{"Ok": "Repuesto guardado. Ya se puede buscar en el sistema."})
}

// POST /delete/:id — redirects to search with a notice whether or not the id
// existed.
func (ct *PartController) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid part id")
	}
	if err := ct.Parts.Delete(uint(id)); err != nil {
		return err
	}

	sess, err := ct.Store.Get(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "session unavailable")
	}
	flashOK(sess, "Repuesto eliminado")
	if err := sess.Save(); err != nil {
		return err
	}
	return c.Redirect("/search", fiber.StatusSeeOther)
}
