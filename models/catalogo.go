package models

// UQOCours est un cours du répertoire UQO tel que retourné par /v1/uqo/cours.
type UQOCours struct {
	Sigle      string   `json:"sigle"`
	Titre      string   `json:"titre"`
	Nom        string   `json:"nom,omitempty"`
	Prenom     string   `json:"prenom,omitempty"`
	Enseignant string   `json:"enseignant,omitempty"`
	Campus     []string `json:"campus,omitempty"`
	Mode       string   `json:"mode,omitempty"`
	Jour       Jour     `json:"jour,omitempty"`
	HeureDebut int      `json:"heure_debut,omitempty"`
	HeureFin   int      `json:"heure_fin,omitempty"`
	Cycle      string   `json:"cycle,omitempty"`
}

// Programme est un programme d'études UQO.
type Programme struct {
	Code    string `json:"code"`
	Libelle string `json:"libelle"`
	Cycle   string `json:"cycle"`
}

// CoursDetails est la fiche abrégée d'un cours.
type CoursDetails struct {
	Titre string `json:"titre"`
}
