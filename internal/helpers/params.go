package helpers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/uqo/assistanat_client/models"

	"github.com/beego/beego/v2/server/web/context"
)

// ParamInt extrait un paramètre de route entier.
func ParamInt(ctx *context.Context, name string) (int, error) {
	if ctx == nil {
		return 0, fmt.Errorf("contexte nil")
	}
	raw := strings.TrimSpace(ctx.Input.Param(":" + strings.TrimPrefix(name, ":")))
	if raw == "" {
		return 0, fmt.Errorf("paramètre %s vide", name)
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("paramètre %s invalide", name)
	}
	return val, nil
}

// ParamTrimestre lit un trimestre AAAAS depuis la route.
func ParamTrimestre(ctx *context.Context, name string) (models.Trimestre, error) {
	v, err := ParamInt(ctx, name)
	if err != nil {
		return 0, err
	}
	t := models.Trimestre(v)
	if t.Saison() < 1 || t.Saison() > 3 {
		return 0, fmt.Errorf("trimestre %d invalide", v)
	}
	return t, nil
}

// ParamString retourne un paramètre de route non vide.
func ParamString(ctx *context.Context, name string) (string, error) {
	raw := strings.TrimSpace(ctx.Input.Param(":" + strings.TrimPrefix(name, ":")))
	if raw == "" {
		return "", fmt.Errorf("paramètre %s vide", name)
	}
	return raw, nil
}
