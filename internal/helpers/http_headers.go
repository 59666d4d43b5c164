package helpers

import (
	"context"
	"strings"

	"github.com/uqo/assistanat_client/internal/clients"

	beectx "github.com/beego/beego/v2/server/web/context"
)

// CorrelationContext reprend l'identifiant de corrélation de la requête entrante
// (X-Correlation-Id, sinon X-Request-Id) pour les appels au backend.
func CorrelationContext(ctx *beectx.Context) context.Context {
	if ctx == nil || ctx.Request == nil {
		return context.Background()
	}
	base := ctx.Request.Context()
	for _, h := range []string{"X-Correlation-Id", "X-Request-Id"} {
		if id := strings.TrimSpace(ctx.Input.Header(h)); id != "" {
			return clients.WithCorrelationID(base, id)
		}
	}
	return base
}
