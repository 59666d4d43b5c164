package models

import "strings"

// CampagneStatus reprend les valeurs du backend et celles, héritées, des fixtures.
type CampagneStatus string

const (
	CampagneEnCours  CampagneStatus = "en_cours"
	CampagneCloturee CampagneStatus = "cloturee"
	CampagneAnnulee  CampagneStatus = "annulee"
)

// Valeurs utilisées par les données de démonstration.
const (
	CampagneInProgress CampagneStatus = "INPROGRESS"
	CampagneCompleted  CampagneStatus = "COMPLETED"
	CampagneConcluded  CampagneStatus = "CONCLUDED"
)

// IsOpen indique si la campagne accepte encore des candidatures.
func (s CampagneStatus) IsOpen() bool {
	return s == CampagneEnCours || strings.EqualFold(string(s), string(CampagneInProgress))
}

// CoursStatus indique si le cours a été confirmé par l'horaire UQO.
type CoursStatus string

const (
	CoursConfirme    CoursStatus = "confirmee"
	CoursNonConfirme CoursStatus = "non_confirmee"
)

// Alias conservés pour les fixtures.
const (
	CoursConfirmeLegacy    CoursStatus = "CONFIRME"
	CoursNonConfirmeLegacy CoursStatus = "NONCONFIRME"
)

// IsConfirme accepte les deux vocabulaires.
func (s CoursStatus) IsConfirme() bool {
	return s == CoursConfirme || s == CoursConfirmeLegacy
}

// ChangeType décrit la nature d'un changement détecté lors d'une synchronisation.
type ChangeType string

const (
	ChangeAdded     ChangeType = "added"
	ChangeRemoved   ChangeType = "removed"
	ChangeModified  ChangeType = "modified"
	ChangeUnchanged ChangeType = "unchanged"
)

// Codes courts des demandes de changement.
const (
	ChangementCreation    = "C"
	ChangementSuppression = "D"
	ChangementNonConfirme = "NC"
)

// Note est la cote obtenue par le candidat dans le cours visé.
type Note string

const (
	NoteAPlus       Note = "A+"
	NoteA           Note = "A"
	NoteAMoins      Note = "A-"
	NoteBPlus       Note = "B+"
	NoteB           Note = "B"
	NoteBMoins      Note = "B-"
	NoteNonSpecifie Note = "non-specife"
)

// Campus de l'UQO.
const (
	CampusGatineau    = "gatineau"
	CampusStJerome    = "st-jerome"
	CampusNonSpecifie = "non-specife"
)
