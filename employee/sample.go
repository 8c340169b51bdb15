package employee

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	firstNames = []string{
		"Alice", "Bruno", "Chen", "Dana", "Elias", "Fatima", "Gustav",
		"Hana", "Ivan", "Julia", "Kofi", "Lena", "Mateo", "Nadia",
		"Omar", "Priya", "Quinn", "Rosa", "Sven", "Tara",
	}
	lastNames = []string{
		"Almeida", "Bauer", "Chavez", "Dietrich", "Eriksson", "Fischer",
		"Gupta", "Hoffman", "Ito", "Jensen", "Kowalski", "Larsen",
		"Moreau", "Novak", "Okafor", "Petrov", "Quispe", "Rossi",
		"Silva", "Tanaka",
	}
	cities = map[string][]string{
		"USA":     {"Austin", "Denver", "Seattle"},
		"Canada":  {"Toronto", "Vancouver"},
		"Germany": {"Berlin", "Munich"},
		"India":   {"Bangalore", "Pune"},
		"Brazil":  {"Sao Paulo", "Recife"},
		"Japan":   {"Tokyo", "Osaka"},
	}
	states = map[string]string{
		"Austin": "TX", "Denver": "CO", "Seattle": "WA",
		"Toronto": "ON", "Vancouver": "BC",
	}
)

// sampleEpoch anchors generated join dates so the same seed always yields
// the same data regardless of when the generator runs.
var sampleEpoch = time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

// idNamespace makes generated employee IDs stable across runs: the ID is a
// name-based UUID over the record's ordinal.
var idNamespace = uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

// Sample generates n employee profiles deterministically from a seed.
// The same (n, seed) pair always produces identical records.
func Sample(n int, seed int64) []Employee {
	rng := rand.New(rand.NewSource(seed))

	employees := make([]Employee, 0, n)
	for i := 0; i < n; i++ {
		first := firstNames[rng.Intn(len(firstNames))]
		last := lastNames[rng.Intn(len(lastNames))]
		country := Countries[rng.Intn(len(Countries))]
		city := cities[country][rng.Intn(len(cities[country]))]

		// Joined some time in the eight years before the epoch.
		joined := sampleEpoch.AddDate(0, 0, -rng.Intn(8*365))

		employees = append(employees, Employee{
			ID:         uuid.NewSHA1(idNamespace, []byte(fmt.Sprintf("employee-%d", i))).String(),
			Name:       first + " " + last,
			Email:      strings.ToLower(first + "." + last + "@example.com"),
			Department: Departments[rng.Intn(len(Departments))],
			Role:       Roles[rng.Intn(len(Roles))],
			Salary:     float64(45000 + rng.Intn(120)*1000),
			Age:        22 + rng.Intn(40),
			JoinDate:   joined.Format(time.RFC3339),
			Active:     rng.Intn(10) < 8,
			Skills:     sampleSkills(rng),
			Address: Address{
				City:    city,
				State:   states[city],
				Country: country,
			},
		})
	}
	return employees
}

// sampleSkills draws one to four distinct skills.
func sampleSkills(rng *rand.Rand) []string {
	count := 1 + rng.Intn(4)
	picked := make([]string, 0, count)
	for _, idx := range rng.Perm(len(SkillSet))[:count] {
		picked = append(picked, SkillSet[idx])
	}
	return picked
}
