package models

import "encoding/json"

// Cours est une section de cours rattachée à une campagne.
type Cours struct {
	Id          int             `json:"id,omitempty"`
	CampagneId  int             `json:"campagne_id,omitempty"`
	Trimestre   Trimestre       `json:"trimestre,omitempty"`
	Sigle       string          `json:"sigle"`
	Titre       string          `json:"titre"`
	Status      CoursStatus     `json:"status,omitempty"`
	Cycle       int             `json:"cycle,omitempty"`
	Candidature []Candidature   `json:"candidature,omitempty"`
	Seance      []Seance        `json:"seance,omitempty"`
	Change      json.RawMessage `json:"change,omitempty"`
}

// Ressource est un enseignant responsable d'une séance.
type Ressource struct {
	Id     int    `json:"id,omitempty"`
	Email  string `json:"email"`
	Nom    string `json:"nom"`
	Prenom string `json:"prenom"`
}

// Seance regroupe les activités d'un groupe-cours.
type Seance struct {
	Id         int             `json:"id,omitempty"`
	Trimestre  Trimestre       `json:"trimestre,omitempty"`
	Sigle      string          `json:"sigle,omitempty"`
	Groupe     string          `json:"groupe,omitempty"`
	Campus     json.RawMessage `json:"campus,omitempty"`
	Ressource  []Ressource     `json:"ressource,omitempty"`
	Activite   []Activite      `json:"activite,omitempty"`
	Changement *Changement     `json:"changement,omitempty"`
	Change     json.RawMessage `json:"change,omitempty"`
}

// Activite est une plage TD/TP/COURS d'une séance.
type Activite struct {
	Id           int         `json:"id"`
	Type         string      `json:"type,omitempty"`
	Mode         string      `json:"mode,omitempty"`
	Status       string      `json:"status,omitempty"`
	Jour         Jour        `json:"jour,omitempty"`
	HrDebut      int         `json:"hr_debut"`
	HrFin        int         `json:"hr_fin"`
	Assistant    *Etudiant   `json:"assistant,omitempty"`
	NombreSeance int         `json:"nombre_seance"`
	Changement   *Changement `json:"changement,omitempty"`
}

// Changement est une demande de changement en attente sur une séance ou une activité.
type Changement struct {
	Type       string                     `json:"type,omitempty"`
	Status     string                     `json:"status,omitempty"`
	ChangeType ChangeType                 `json:"change_type,omitempty"`
	Value      map[string]json.RawMessage `json:"value,omitempty"`
}

// Pending indique qu'une approbation est requise.
func (c *Changement) Pending() bool {
	if c == nil {
		return false
	}
	if c.ChangeType != "" {
		return c.ChangeType != ChangeUnchanged
	}
	return c.Status == ChangementNonConfirme
}

// ActiviteUpdate décrit la mise à jour d'une activité (assignation, nombre de séances).
type ActiviteUpdate struct {
	Id           int    `json:"id"`
	Candidature  []int  `json:"candidature,omitempty"`
	NombreSeance *int   `json:"nombre_seance,omitempty"`
	Status       string `json:"status,omitempty"`
}

// SeanceUpdateRequest est le payload de PUT /v1/campagne/{trimestre}/{sigle}/{groupe}.
type SeanceUpdateRequest struct {
	Activite []ActiviteUpdate `json:"activite"`
}

// ChangeInfo décrit le changement approuvé.
type ChangeInfo struct {
	ChangeType ChangeType             `json:"change_type"`
	Value      map[string]interface{} `json:"value"`
}

// ApprovalResponse est la réponse des routes d'approbation.
type ApprovalResponse struct {
	Entity   map[string]interface{} `json:"entity"`
	Change   ChangeInfo             `json:"change"`
	Approved bool                   `json:"approved"`
}
