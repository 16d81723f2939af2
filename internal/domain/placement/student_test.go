package placement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStudent(t *testing.T) {
	t.Run("creates student with valid fields", func(t *testing.T) {
		student, err := NewStudent("Ravi Kumar", "20951A0501", "ravi@iare.ac.in")

		require.NoError(t, err)
		assert.Equal(t, "Ravi Kumar", student.Name)
		assert.Equal(t, "20951A0501", student.RollNumber)
		assert.Equal(t, "ravi@iare.ac.in", student.Email)
		assert.Equal(t, StudentStatusNotPlaced, student.CurrentStatus)
		assert.Equal(t, 0, student.TotalOffers)

		events := student.GetDomainEvents()
		require.Len(t, events, 1)
		_, ok := events[0].(*StudentCreatedEvent)
		assert.True(t, ok)
	})

	t.Run("trims whitespace", func(t *testing.T) {
		student, err := NewStudent("  Ravi Kumar  ", " 20951A0501 ", " ravi@iare.ac.in ")

		require.NoError(t, err)
		assert.Equal(t, "Ravi Kumar", student.Name)
		assert.Equal(t, "20951A0501", student.RollNumber)
	})

	t.Run("lowercases email", func(t *testing.T) {
		student, err := NewStudent("Ravi Kumar", "20951A0501", "Ravi@IARE.ac.in")

		require.NoError(t, err)
		assert.Equal(t, "ravi@iare.ac.in", student.Email)
	})

	t.Run("fails with blank name", func(t *testing.T) {
		_, err := NewStudent("   ", "20951A0501", "ravi@iare.ac.in")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Name is required")
	})

	t.Run("fails with blank roll number", func(t *testing.T) {
		_, err := NewStudent("Ravi Kumar", "", "ravi@iare.ac.in")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Roll number is required")
	})

	t.Run("fails with blank email", func(t *testing.T) {
		_, err := NewStudent("Ravi Kumar", "20951A0501", "")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Email is required")
	})

	t.Run("fails with malformed email", func(t *testing.T) {
		_, err := NewStudent("Ravi Kumar", "20951A0501", "ravi-at-iare")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid email format")
	})
}

func TestStudent_RecordOffer(t *testing.T) {
	t.Run("first offer marks student placed", func(t *testing.T) {
		student, _ := NewStudent("Ravi Kumar", "20951A0501", "ravi@iare.ac.in")
		student.ClearDomainEvents()

		student.RecordOffer()

		assert.True(t, student.IsPlaced())
		assert.Equal(t, 1, student.TotalOffers)

		events := student.GetDomainEvents()
		require.Len(t, events, 1)
		_, ok := events[0].(*StudentPlacedEvent)
		assert.True(t, ok)
	})

	t.Run("further offers only bump the counter", func(t *testing.T) {
		student, _ := NewStudent("Ravi Kumar", "20951A0501", "ravi@iare.ac.in")
		student.RecordOffer()
		student.ClearDomainEvents()

		student.RecordOffer()

		assert.Equal(t, 2, student.TotalOffers)
		assert.Empty(t, student.GetDomainEvents())
	})
}

func TestStudent_MatchesSearch(t *testing.T) {
	student, _ := NewStudent("Ravi Kumar", "20951A0501", "ravi@iare.ac.in")

	tests := []struct {
		name string
		term string
		want bool
	}{
		{"empty term matches", "", true},
		{"name substring", "ravi", true},
		{"name case-insensitive", "KUMAR", true},
		{"roll number substring", "951a05", true},
		{"email substring", "@iare", true},
		{"no match", "priya", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, student.MatchesSearch(tt.term))
		})
	}
}
