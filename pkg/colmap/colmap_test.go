package colmap_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unidadrb/padron/pkg/colmap"
)

func TestResolveRole(t *testing.T) {
	tests := []struct {
		name     string
		headers  []string
		role     colmap.Role
		expected int
	}{
		{
			name:     "exact lowercase",
			headers:  []string{"dni", "apellido", "nombre"},
			role:     colmap.RoleIdentifier,
			expected: 0,
		},
		{
			name:     "uppercase header",
			headers:  []string{"DNI", "APELLIDO"},
			role:     colmap.RoleIdentifier,
			expected: 0,
		},
		{
			name:     "mixed case substring",
			headers:  []string{"Nro", "Dni Afiliado", "Apellido y Nombre"},
			role:     colmap.RoleIdentifier,
			expected: 1,
		},
		{
			name:     "first match wins",
			headers:  []string{"mail personal", "mail laboral"},
			role:     colmap.RoleContact,
			expected: 0,
		},
		{
			name:     "postal address counts as contact",
			headers:  []string{"dni", "domicilio"},
			role:     colmap.RoleContact,
			expected: 1,
		},
		{
			name:     "enrollment synonyms",
			headers:  []string{"dni", "Fecha de Alta"},
			role:     colmap.RoleEnrolled,
			expected: 1,
		},
		{
			name:     "no match",
			headers:  []string{"dni", "apellido"},
			role:     colmap.RoleContact,
			expected: -1,
		},
		{
			name:     "empty headers",
			headers:  nil,
			role:     colmap.RoleIdentifier,
			expected: -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, colmap.ResolveRole(tt.headers, tt.role))
		})
	}
}

func TestNormalize(t *testing.T) {
	t.Run("maps a full table", func(t *testing.T) {
		tbl := colmap.Table{
			Headers: []string{"DNI", "Apellido", "Nombre", "Mail", "Fecha Ingreso"},
			Rows: [][]string{
				{"28.401.933", "PEREZ", "juan", " juan@example.com ", "15/03/2019"},
				{"30123456", "GOMEZ", "MARIA", "", ""},
			},
		}
		res := colmap.Normalize(tbl, "padron.xlsx")

		assert.Equal(t, "padron.xlsx", res.SourceName)
		require.Len(t, res.Records, 2)

		first := res.Records[0]
		assert.Equal(t, "0", first.SequenceID)
		assert.Equal(t, "28401933", first.Identifier)
		assert.Equal(t, "Perez", first.Surname)
		assert.Equal(t, "Juan", first.GivenName)
		assert.Equal(t, "juan@example.com", first.Contact)
		assert.Equal(t,
			time.Date(2019, 3, 15, 0, 0, 0, 0, time.UTC), first.Enrolled)

		second := res.Records[1]
		assert.Equal(t, "1", second.SequenceID)
		assert.True(t, second.Enrolled.IsZero())
	})

	t.Run("unresolved roles degrade to empty values", func(t *testing.T) {
		tbl := colmap.Table{
			Headers: []string{"dni"},
			Rows:    [][]string{{"28401933"}},
		}
		res := colmap.Normalize(tbl, "min.csv")

		require.Len(t, res.Records, 1)
		rec := res.Records[0]
		assert.Equal(t, "28401933", rec.Identifier)
		assert.Empty(t, rec.Surname)
		assert.Empty(t, rec.Contact)
		assert.True(t, rec.Enrolled.IsZero())
	})

	t.Run("short rows never panic", func(t *testing.T) {
		tbl := colmap.Table{
			Headers: []string{"dni", "apellido", "nombre"},
			Rows:    [][]string{{"28401933"}},
		}
		res := colmap.Normalize(tbl, "short.csv")
		require.Len(t, res.Records, 1)
		assert.Empty(t, res.Records[0].Surname)
	})

	t.Run("unparseable date degrades to absent", func(t *testing.T) {
		tbl := colmap.Table{
			Headers: []string{"dni", "fecha"},
			Rows:    [][]string{{"28401933", "marzo de 2019"}},
		}
		res := colmap.Normalize(tbl, "dates.csv")
		require.Len(t, res.Records, 1)
		assert.True(t, res.Records[0].Enrolled.IsZero())
	})

	t.Run("day-first layout wins", func(t *testing.T) {
		tbl := colmap.Table{
			Headers: []string{"dni", "fecha"},
			Rows:    [][]string{{"28401933", "02/03/2019"}},
		}
		res := colmap.Normalize(tbl, "dates.csv")
		require.Len(t, res.Records, 1)
		assert.Equal(t, time.March, res.Records[0].Enrolled.Month())
		assert.Equal(t, 2, res.Records[0].Enrolled.Day())
	})

	t.Run("empty table", func(t *testing.T) {
		res := colmap.Normalize(colmap.Table{}, "empty.csv")
		assert.True(t, res.IsEmpty())
	})
}
