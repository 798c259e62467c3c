package instructor

import "testing"

func TestInstructor_Initials(t *testing.T) {
	tests := []struct {
		name     string
		instName string
		want     string
	}{
		{name: "first and last", instName: "John Smith", want: "JS"},
		{name: "middle names ignored", instName: "Lisa May Anderson", want: "LA"},
		{name: "single token", instName: "Cher", want: "C"},
		{name: "lowercased input", instName: "john smith", want: "JS"},
		{name: "extra whitespace", instName: "  John   Smith  ", want: "JS"},
		{name: "empty", instName: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inst := Instructor{Name: tt.instName}
			if got := inst.Initials(); got != tt.want {
				t.Errorf("Initials() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestInstructor_IsValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{email: "john.smith@example.com", want: true},
		{email: "a@b.co", want: true},
		{email: "no-at-sign", want: false},
		{email: "missing@tld", want: false},
		{email: "spaces in@local.com", want: false},
		{email: "", want: false},
	}
	for _, tt := range tests {
		t.Run("email="+tt.email, func(t *testing.T) {
			inst := Instructor{Email: tt.email}
			if got := inst.IsValidEmail(); got != tt.want {
				t.Errorf("IsValidEmail() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInstructor_EmailDomain(t *testing.T) {
	tests := []struct {
		email string
		want  string
	}{
		{email: "john.smith@example.com", want: "example.com"},
		{email: "weird@left@right", want: "left@right"},
		{email: "no-at-sign", want: ""},
		{email: "", want: ""},
	}
	for _, tt := range tests {
		t.Run("email="+tt.email, func(t *testing.T) {
			inst := Instructor{Email: tt.email}
			if got := inst.EmailDomain(); got != tt.want {
				t.Errorf("EmailDomain() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestInstructor_MatchesSearch(t *testing.T) {
	inst := Instructor{Name: "Sarah Johnson", Email: "sarah.johnson@university.edu"}

	tests := []struct {
		name  string
		query string
		want  bool
	}{
		{name: "empty matches everything", query: "", want: true},
		{name: "whitespace-only matches everything", query: "   ", want: true},
		{name: "name substring", query: "sarah", want: true},
		{name: "name case-insensitive", query: "JOHNSON", want: true},
		{name: "email substring", query: "sarah.johnson@", want: true},
		{name: "domain substring", query: "university", want: true},
		{name: "no match", query: "techcorp", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := inst.MatchesSearch(tt.query); got != tt.want {
				t.Errorf("MatchesSearch(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}
