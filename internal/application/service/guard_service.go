package service

import (
	"github.com/wadoud17/maktabati-pos/internal/domain/entity"
	"github.com/wadoud17/maktabati-pos/internal/domain/enum"
)

// Screen identifies a navigable screen of the client.
type Screen int

const (
	ScreenLogin Screen = iota
	ScreenDashboard
	ScreenProducts
	ScreenCheckout
)

func (s Screen) String() string {
	names := [...]string{"login", "dashboard", "products", "checkout"}
	if int(s) < 0 || int(s) >= len(names) {
		return "unknown"
	}
	return names[s]
}

// Verdict is the outcome of a guard decision.
type Verdict int

const (
	// VerdictPending means the session is still loading; render only a
	// pending indicator.
	VerdictPending Verdict = iota
	// VerdictAllow means the requested screen may render.
	VerdictAllow
	// VerdictRedirect means navigation must go to Decision.Target instead.
	VerdictRedirect
)

// Decision is the result of evaluating a navigation request.
type Decision struct {
	Verdict Verdict
	Target  Screen
}

// screenRoles is the static, exhaustive role requirement per screen. Screens
// absent from the map require only an authenticated identity.
var screenRoles = map[Screen]enum.Role{
	ScreenDashboard: enum.RoleAdmin,
	ScreenProducts:  enum.RoleAdmin,
	ScreenCheckout:  enum.RoleCashier,
}

// DefaultScreen returns the landing screen for a role: the dashboard for
// admins, the checkout for cashiers.
func DefaultScreen(role enum.Role) Screen {
	if role == enum.RoleCashier {
		return ScreenCheckout
	}
	return ScreenDashboard
}

// sessionState is the part of the session the guard reads.
type sessionState interface {
	Current() *entity.User
	IsLoading() bool
}

// Guard decides, per navigation, whether a requested screen may render for
// the current session.
type Guard struct {
	session sessionState
}

// NewGuard creates a guard over the given session.
func NewGuard(session sessionState) *Guard {
	return &Guard{session: session}
}

// Decide evaluates a navigation request to the target screen.
func (g *Guard) Decide(target Screen) Decision {
	if g.session.IsLoading() {
		return Decision{Verdict: VerdictPending, Target: target}
	}

	user := g.session.Current()
	if user == nil {
		if target == ScreenLogin {
			return Decision{Verdict: VerdictAllow, Target: target}
		}
		return Decision{Verdict: VerdictRedirect, Target: ScreenLogin}
	}

	// An identity carrying an unknown role grants nothing.
	if !user.Role.IsValid() {
		if target == ScreenLogin {
			return Decision{Verdict: VerdictAllow, Target: target}
		}
		return Decision{Verdict: VerdictRedirect, Target: ScreenLogin}
	}

	// Authenticated users never see the login screen again.
	if target == ScreenLogin {
		return Decision{Verdict: VerdictRedirect, Target: DefaultScreen(user.Role)}
	}

	required, known := screenRoles[target]
	if !known {
		// Unmatched path: back to the default screen.
		return Decision{Verdict: VerdictRedirect, Target: DefaultScreen(user.Role)}
	}
	if user.Role != required {
		return Decision{Verdict: VerdictRedirect, Target: DefaultScreen(user.Role)}
	}
	return Decision{Verdict: VerdictAllow, Target: target}
}
