package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Trimestre identifie un trimestre académique codé AAAAS (ex. 20251 = hiver 2025).
// La désérialisation accepte un nombre ou une chaîne, le backend et les fixtures
// n'étant pas cohérents entre eux.
type Trimestre int

// UnmarshalJSON supporte les formats hétérogènes des réponses de l'API.
func (t *Trimestre) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*t = 0
		return nil
	}
	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*t = 0
			return nil
		}
		v, err := strconv.Atoi(s)
		if err != nil {
			return err
		}
		*t = Trimestre(v)
		return nil
	}
	var v int
	if err := json.Unmarshal(trimmed, &v); err != nil {
		return err
	}
	*t = Trimestre(v)
	return nil
}

// MarshalJSON sérialise la valeur comme entier.
func (t Trimestre) MarshalJSON() ([]byte, error) {
	return json.Marshal(int(t))
}

// Int retourne la valeur entière native.
func (t Trimestre) Int() int {
	return int(t)
}

// Annee retourne l'année encodée dans le trimestre.
func (t Trimestre) Annee() int {
	return int(t) / 10
}

// Saison retourne le chiffre de saison (1 hiver, 2 été, 3 automne).
func (t Trimestre) Saison() int {
	return int(t) % 10
}

func (t Trimestre) String() string {
	switch t.Saison() {
	case 1:
		return fmt.Sprintf("Hiver %d", t.Annee())
	case 2:
		return fmt.Sprintf("Été %d", t.Annee())
	case 3:
		return fmt.Sprintf("Automne %d", t.Annee())
	}
	return strconv.Itoa(int(t))
}

// PathSegment retourne la forme utilisée dans les URL de l'API.
func (t Trimestre) PathSegment() string {
	return strconv.Itoa(int(t))
}

// Jour accepte un nom de jour ("lundi") ou un numéro (1 = lundi) selon la source.
type Jour string

var joursSemaine = []string{"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi"}

// UnmarshalJSON normalise les numéros de jour en nom.
func (j *Jour) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*j = ""
		return nil
	}
	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*j = Jour(strings.ToLower(strings.TrimSpace(s)))
		return nil
	}
	var n int
	if err := json.Unmarshal(trimmed, &n); err != nil {
		return err
	}
	if n >= 0 && n < len(joursSemaine) {
		*j = Jour(joursSemaine[n])
		return nil
	}
	*j = Jour(strconv.Itoa(n))
	return nil
}
