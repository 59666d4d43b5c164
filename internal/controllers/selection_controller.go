package controllers

import (
	"encoding/json"
	"net/http"

	rootcontrollers "github.com/uqo/assistanat_client/controllers"
)

// SelectionController expose le trimestre sélectionné et les trimestres connus.
type SelectionController struct {
	rootcontrollers.BaseController
}

type selectionRequest struct {
	SelectedTrimestre json.RawMessage `json:"selectedTrimestre"`
}

func (c *SelectionController) Get() {
	c.RespondSuccess(http.StatusOK, "", application().Selection.Snapshot())
}

// Put sélectionne un trimestre. Une valeur non numérique vide la sélection.
func (c *SelectionController) Put() {
	var body selectionRequest
	if err := c.ParseJSONBody(&body); err != nil {
		c.RespondError(err, "")
		return
	}
	var value interface{}
	if len(body.SelectedTrimestre) > 0 {
		if err := json.Unmarshal(body.SelectedTrimestre, &value); err != nil {
			c.RespondError(err, "")
			return
		}
	}

	a := application()
	ctx := c.RequestContext()
	a.Selection.SetSelectedValue(ctx, value)
	a.Selection.ValidateSelection(ctx)
	c.RespondSuccess(http.StatusOK, "", a.Selection.Snapshot())
}
