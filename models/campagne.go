package models

// CampagneConfig regroupe la configuration d'une campagne.
type CampagneConfig struct {
	EchelleSalariale []float64 `json:"echelle_salariale,omitempty"`
}

// Campagne représente le cycle d'assistanat d'un trimestre.
type Campagne struct {
	Id        int                `json:"id"`
	Trimestre Trimestre          `json:"trimestre"`
	Status    CampagneStatus     `json:"status"`
	Config    *CampagneConfig    `json:"config,omitempty"`
	Cours     []Cours            `json:"cours,omitempty"`
	Stats     map[string]float64 `json:"stats,omitempty"`
	Lien      string             `json:"lien,omitempty"`

	// Agrégats exposés par les données de démonstration.
	Salaire1             float64   `json:"salaire_1,omitempty"`
	Salaire2             float64   `json:"salaire_2,omitempty"`
	Salaire3             float64   `json:"salaire_3,omitempty"`
	Salaire              []float64 `json:"salaire,omitempty"`
	CoutTotal            float64   `json:"cout_total,omitempty"`
	NbrCandidatureCycle1 int       `json:"nbr_candidature_cycle1,omitempty"`
	NbrCandidatureCycle2 int       `json:"nbr_candidature_cycle2,omitempty"`
	NbrCandidatureCycle3 int       `json:"nbr_candidature_cycle3,omitempty"`
	NbrAssistantCycle1   int       `json:"nbr_assistant_cycle1,omitempty"`
	NbrAssistantCycle2   int       `json:"nbr_assistant_cycle2,omitempty"`
	NbrAssistantCycle3   int       `json:"nbr_assistant_cycle3,omitempty"`
	NbrCours             int       `json:"nbr_cours,omitempty"`
	NbrTDTotal           int       `json:"nbr_td_total,omitempty"`
	NbrTPTotal           int       `json:"nbr_tp_total,omitempty"`
}

// FindCours retourne le cours de sigle donné, s'il existe.
func (c Campagne) FindCours(sigle string) (*Cours, bool) {
	for i := range c.Cours {
		if c.Cours[i].Sigle == sigle {
			return &c.Cours[i], true
		}
	}
	return nil, false
}

// ChangementsEnAttente compte les séances et activités dont un changement attend approbation.
func (c Campagne) ChangementsEnAttente() int {
	total := 0
	for _, cours := range c.Cours {
		for _, seance := range cours.Seance {
			if seance.Changement.Pending() {
				total++
			}
			for _, act := range seance.Activite {
				if act.Changement.Pending() {
					total++
				}
			}
		}
	}
	return total
}

// CampagneCoursItem désigne un cours à inclure dans la campagne.
type CampagneCoursItem struct {
	Sigle string `json:"sigle"`
	Titre string `json:"titre,omitempty"`
}

// CampagneCreateRequest est le payload de POST /v1/campagne.
type CampagneCreateRequest struct {
	Trimestre Trimestre              `json:"trimestre"`
	Config    map[string]interface{} `json:"config,omitempty"`
	Cours     []CampagneCoursItem    `json:"cours"`
}

// CampagneUpdateRequest permet une mise à jour partielle d'une campagne.
type CampagneUpdateRequest struct {
	Config map[string]interface{} `json:"config,omitempty"`
	Status *CampagneStatus        `json:"status,omitempty"`
	Cours  []CampagneCoursItem    `json:"cours,omitempty"`
}
