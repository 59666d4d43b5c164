package controllers

import (
	"github.com/uqo/assistanat_client/internal/app"
)

var current *app.App

// Bind fournit l'application aux contrôleurs; appelé une fois au démarrage.
func Bind(a *app.App) {
	current = a
}

func application() *app.App {
	if current == nil {
		panic("controllers: application non liée")
	}
	return current
}
