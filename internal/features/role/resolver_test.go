package role

import (
	"reflect"
	"testing"

	"go-reporthub/internal/features/user"
)

func tokensEqual(t *testing.T, got, want []PageToken) {
	t.Helper()
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestResolvePrecedence(t *testing.T) {
	roles := map[string]Role{
		"manager": {Name: "manager", Permissions: []PageToken{TokenDashboard, TokenSubmit}},
	}

	tests := []struct {
		name string
		user user.User
		want []PageToken
	}{
		{
			name: "explicit override wins over role table",
			user: user.User{Role: "manager", PagePermissions: []string{TokenStatistics}},
			want: []PageToken{TokenStatistics},
		},
		{
			name: "role table entry wins over defaults",
			user: user.User{Role: "manager"},
			want: []PageToken{TokenDashboard, TokenSubmit},
		},
		{
			name: "default table used when role table has no entry",
			user: user.User{Role: "statistician"},
			want: []PageToken{TokenDashboard, TokenStatistics, TokenReports},
		},
		{
			name: "unknown role falls back to dashboard only",
			user: user.User{Role: "ghost"},
			want: []PageToken{TokenDashboard},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokensEqual(t, Resolve(&tt.user, roles), tt.want)
		})
	}
}

func TestResolveIsIdempotent(t *testing.T) {
	u := user.User{Role: "manager", PagePermissions: []string{TokenReports, TokenSubmit}}
	roles := map[string]Role{}

	first := Resolve(&u, roles)
	second := Resolve(&u, roles)
	tokensEqual(t, second, first)

	// Mutating the result must not leak back into the user.
	first[0] = "mutated"
	tokensEqual(t, Resolve(&u, roles), []PageToken{TokenReports, TokenSubmit})
}

func TestDefaultTableCoversSystemRoles(t *testing.T) {
	for _, r := range SystemRoles() {
		if len(r.Permissions) == 0 {
			t.Errorf("system role %q has no default permissions", r.Name)
		}
		for _, token := range r.Permissions {
			found := false
			for _, known := range AllTokens {
				if token == known {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("system role %q carries unknown token %q", r.Name, token)
			}
		}
	}
}

func TestCanAccess(t *testing.T) {
	u := user.User{Role: "data_entry"}

	if !CanAccess(&u, nil, TokenSubmit) {
		t.Error("data_entry should access submit page")
	}
	if CanAccess(&u, nil, TokenUsers) {
		t.Error("data_entry should not access users page")
	}
}

func TestScopeLocation(t *testing.T) {
	tests := []struct {
		name      string
		user      user.User
		requested string
		want      string
	}{
		{
			name:      "location-bound manager always gets own location",
			user:      user.User{Role: "manager", AssignedLocation: "Clinic A"},
			requested: "Clinic B",
			want:      "Clinic A",
		},
		{
			name:      "admin request honored as-is",
			user:      user.User{Role: "admin", AssignedLocation: "Clinic A"},
			requested: "Clinic B",
			want:      "Clinic B",
		},
		{
			name:      "unbound user keeps requested location",
			user:      user.User{Role: "statistician"},
			requested: "Clinic B",
			want:      "Clinic B",
		},
		{
			name:      "empty request from bound user still scoped",
			user:      user.User{Role: "data_entry", AssignedLocation: "Clinic A"},
			requested: "",
			want:      "Clinic A",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ScopeLocation(&tt.user, tt.requested); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
