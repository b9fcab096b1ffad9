package http

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/Dill1027/DT-Price-List/internal/application/dto"
)

// RequestValidator valida cuerpos JSON y parsea la query de listados.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator configura el validador para reportar los nombres JSON de los campos.
func NewRequestValidator() *RequestValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &RequestValidator{validate: v}
}

// Struct valida s y devuelve un mensaje legible con el primer campo inválido.
func (rv *RequestValidator) Struct(s any) error {
	err := rv.validate.Struct(s)
	if err == nil {
		return nil
	}
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) || len(ves) == 0 {
		return err
	}
	fe := ves[0]
	switch fe.Tag() {
	case "required":
		return fmt.Errorf("%s is required", fe.Field())
	case "max":
		return fmt.Errorf("%s cannot exceed %s", fe.Field(), fe.Param())
	case "min":
		return fmt.Errorf("%s must be at least %s", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Errorf("%s must be one of: %s", fe.Field(), fe.Param())
	default:
		return fmt.Errorf("%s is invalid", fe.Field())
	}
}

// bind parsea el cuerpo en out y lo valida; escribe la respuesta 400 si falla.
func (rv *RequestValidator) bind(c *fiber.Ctx, out any) (bool, error) {
	if err := c.BodyParser(out); err != nil {
		return false, invalidBody(c)
	}
	if err := rv.Struct(out); err != nil {
		return false, badRequest(c, "VALIDATION", err.Error())
	}
	return true, nil
}

// ParseProductQuery lee filtros, orden y paginación del listado de productos.
func (rv *RequestValidator) ParseProductQuery(c *fiber.Ctx) (dto.ProductListQuery, error) {
	q := dto.ProductListQuery{
		CategoryID: strings.TrimSpace(c.Query("category")),
		BrandID:    strings.TrimSpace(c.Query("brand")),
		Phase:      strings.TrimSpace(c.Query("phase")),
		Search:     c.Query("search"),
		SortBy:     strings.TrimSpace(c.Query("sortBy")),
		SortOrder:  strings.TrimSpace(c.Query("sortOrder")),
	}
	var err error
	if q.Page, err = queryInt(c, "page"); err != nil {
		return q, err
	}
	if q.Limit, err = queryInt(c, "limit"); err != nil {
		return q, err
	}
	if q.MinHP, err = queryFloat(c, "minHp"); err != nil {
		return q, err
	}
	if q.MaxHP, err = queryFloat(c, "maxHp"); err != nil {
		return q, err
	}
	if q.MinPrice, err = queryDecimal(c, "minPrice"); err != nil {
		return q, err
	}
	if q.MaxPrice, err = queryDecimal(c, "maxPrice"); err != nil {
		return q, err
	}
	if q.MinPrice != nil && q.MaxPrice != nil && q.MinPrice.GreaterThan(*q.MaxPrice) {
		return q, errors.New("minPrice must be less than or equal to maxPrice")
	}
	if q.MinHP != nil && q.MaxHP != nil && *q.MinHP > *q.MaxHP {
		return q, errors.New("minHp must be less than or equal to maxHp")
	}
	return q, nil
}

func queryInt(c *fiber.Ctx, key string) (int, error) {
	s := strings.TrimSpace(c.Query(key))
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid %s value", key)
	}
	return n, nil
}

func queryFloat(c *fiber.Ctx, key string) (*float64, error) {
	s := strings.TrimSpace(c.Query(key))
	if s == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value", key)
	}
	return &f, nil
}

func queryDecimal(c *fiber.Ctx, key string) (*decimal.Decimal, error) {
	s := strings.TrimSpace(c.Query(key))
	if s == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value", key)
	}
	return &d, nil
}
