package models

// Etudiant est un candidat à un poste d'assistant.
type Etudiant struct {
	Id            int           `json:"id,omitempty"`
	CodePermanent string        `json:"code_permanent,omitempty"`
	Email         string        `json:"email,omitempty"`
	Nom           string        `json:"nom,omitempty"`
	Prenom        string        `json:"prenom,omitempty"`
	Campus        string        `json:"campus,omitempty"`
	Cycle         int           `json:"cycle,omitempty"`
	Programme     string        `json:"programme,omitempty"`
	Trimestre     Trimestre     `json:"trimestre,omitempty"`
	Candidature   []Candidature `json:"candidature,omitempty"`
}

// Candidature est la demande d'un étudiant pour un cours.
type Candidature struct {
	Id            int        `json:"id,omitempty"`
	CoursId       int        `json:"cours_id,omitempty"`
	IdEtudiant    int        `json:"id_etudiant,omitempty"`
	Sigle         string     `json:"sigle,omitempty"`
	Titre         string     `json:"titre,omitempty"`
	Note          Note       `json:"note,omitempty"`
	HasExp        bool       `json:"has_exp"`
	Trimestre     Trimestre  `json:"trimestre,omitempty"`
	Etudiant      *Etudiant  `json:"etudiant,omitempty"`
	CodePermanent string     `json:"code_permanent,omitempty"`
	Nom           string     `json:"nom,omitempty"`
	Prenom        string     `json:"prenom,omitempty"`
	Campus        string     `json:"campus,omitempty"`
	Cycle         int        `json:"cycle,omitempty"`
	Activite      []Activite `json:"activite,omitempty"`
}

// CandidaturePayload ajoute un candidat directement à un cours.
type CandidaturePayload struct {
	CodePermanent string `json:"code_permanent"`
	Nom           string `json:"nom"`
	Prenom        string `json:"prenom"`
	Cycle         int    `json:"cycle"`
	Campus        string `json:"campus,omitempty"`
	Programme     string `json:"programme,omitempty"`
	Email         string `json:"email,omitempty"`
}

// CandidatureCoursItem est un élément du champ courses_json du formulaire.
type CandidatureCoursItem struct {
	Sigle string `json:"sigle"`
	Titre string `json:"titre,omitempty"`
	Note  Note   `json:"note,omitempty"`
}

// ResumeFile est le CV joint à une candidature.
type ResumeFile struct {
	Filename string
	Content  []byte
}

// CandidatureForm est le formulaire multipart de création ou de mise à jour.
// Les champs vides ne sont pas envoyés.
type CandidatureForm struct {
	CodePermanent string
	Nom           string
	Prenom        string
	Cycle         int
	Trimestre     Trimestre
	Campus        string
	Programme     string
	Email         string
	Courses       []CandidatureCoursItem
	Resume        *ResumeFile
}

// Resume est le contenu binaire téléchargé pour une candidature.
type Resume struct {
	ContentType string
	Filename    string
	Content     []byte
}
