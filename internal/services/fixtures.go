package services

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"

	"github.com/uqo/assistanat_client/models"
)

//go:embed fixtures/*.json
var fixtureFS embed.FS

func loadFixture(name string, out interface{}) {
	raw, err := fixtureFS.ReadFile("fixtures/" + name)
	if err != nil {
		panic(fmt.Sprintf("fixture %s: %v", name, err))
	}
	if err := json.Unmarshal(raw, out); err != nil {
		panic(fmt.Sprintf("fixture %s: %v", name, err))
	}
}

// CampagneFixtures sert des campagnes de démonstration sans backend.
type CampagneFixtures struct{}

// GetCampagneData retourne la liste résumée des campagnes.
func (CampagneFixtures) GetCampagneData() []models.Campagne {
	var out []models.Campagne
	loadFixture("campagnes.json", &out)
	return out
}

// GetCampagneWithCoursesData retourne les campagnes avec leurs cours.
func (CampagneFixtures) GetCampagneWithCoursesData() []models.Campagne {
	var out []models.Campagne
	loadFixture("campagnes_cours.json", &out)
	return out
}

func (f CampagneFixtures) GetCampagneWithCourses(ctx context.Context) ([]models.Campagne, error) {
	return f.GetCampagneWithCoursesData(), nil
}

func (f CampagneFixtures) GetCampagnes(ctx context.Context) ([]models.Campagne, error) {
	return f.GetCampagneData(), nil
}

// GetCampagne retourne la campagne du trimestre, ou la première campagne détaillée
// si le trimestre est inconnu.
func (f CampagneFixtures) GetCampagne(ctx context.Context, trimestre models.Trimestre) (*models.Campagne, error) {
	data := f.GetCampagneWithCoursesData()
	for i := range data {
		if data[i].Trimestre == trimestre {
			return &data[i], nil
		}
	}
	return &data[0], nil
}

type CandidatFixtures struct{}

func (CandidatFixtures) GetData() []models.Etudiant {
	var out []models.Etudiant
	loadFixture("candidats.json", &out)
	return out
}

func (f CandidatFixtures) GetCandidat(ctx context.Context) ([]models.Etudiant, error) {
	return f.GetData(), nil
}

type CourseFixtures struct{}

func (CourseFixtures) GetCoursesData() []models.UQOCours {
	var out []models.UQOCours
	loadFixture("cours.json", &out)
	return out
}

// GetCourses ignore le trimestre et le département.
func (f CourseFixtures) GetCourses(ctx context.Context, trimestre models.Trimestre, departement string) ([]models.UQOCours, error) {
	return f.GetCoursesData(), nil
}

type UQOFixtures struct{}

// GetMapCours indexe les titres de cours par sigle.
func (UQOFixtures) GetMapCours(trimestre models.Trimestre) map[string]models.CoursDetails {
	out := map[string]models.CoursDetails{}
	loadFixture("uqo_map_cours.json", &out)
	return out
}

func (UQOFixtures) GetCoursDetails(sigle string) models.CoursDetails {
	return models.CoursDetails{Titre: "Programmation Web"}
}

func (UQOFixtures) GetProgramme(cycle string) []models.Programme {
	var out []models.Programme
	loadFixture("uqo_programmes.json", &out)
	return out
}

var _ CampagneReader = CampagneFixtures{}
var _ CampagneReader = (*CampagneService)(nil)
