package app

import (
	"net/http"

	"github.com/uqo/assistanat_client/helpers"
)

var (
	errEmptyEmail  = helpers.NewAppError(http.StatusBadRequest, "courriel requis", nil)
	errNoSelection = helpers.NewAppError(http.StatusConflict, "aucun trimestre sélectionné", nil)
)

// ErrNoSelection est retournée quand aucun trimestre n'est connu.
var ErrNoSelection error = errNoSelection
