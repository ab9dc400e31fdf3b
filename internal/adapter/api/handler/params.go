package handler

import (
	"fmt"
	"strconv"

	"github.com/labstack/echo/v4"

	"chainmart/pkg/errors"
)

func pathInt64(c echo.Context, name string) (int64, error) {
	value, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || value < 1 {
		return 0, errors.BadRequest(fmt.Sprintf("invalid %s", name), err)
	}
	return value, nil
}
