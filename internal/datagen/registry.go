package datagen

import (
	"fmt"

	"github.com/mesh-intelligence/urugen/internal/store"
)

// Seed pools for registry entities. Counts beyond the pool fall back to
// derived names so the row counts stay configurable.
var (
	shopNamePool = []string{"Loja Principal", "Filial Centro", "Filial Shopping"}

	rolePool = []struct {
		name        string
		permissions []string
	}{
		{"admin", []string{"all"}},
		{"manager", []string{"read", "write"}},
		{"staff", []string{"read"}},
		{"viewer", []string{"read"}},
		{"cashier", []string{"read", "process_payments"}},
	}

	profileTypes   = []string{"admin", "staff", "manager"}
	userStatuses   = []string{"active", "active", "inactive"}
	deviceTypes    = []string{"desktop", "mobile"}
	oauthProviders = []string{"google", "apple"}
)

// sessionUserCap limits session generation to the first users created, so the
// session count is predictable for a given user count.
const sessionUserCap = 20

// identitySampleSize is the number of users that get an external identity.
const identitySampleSize = 10

// registryPipeline is the fixed topological order for registry generators:
// every generator runs after all generators whose identifiers it consumes.
func (g *Generator) registryPipeline() []pipelineStep {
	return []pipelineStep{
		{"shops", g.genShops},
		{"users", g.genUsers},
		{"roles", g.genRoles},
		{"user_roles", g.genUserRoles},
		{"user_sessions", g.genUserSessions},
		{"user_identities", g.genUserIdentities},
	}
}

func (g *Generator) genShops(x store.Execer) (int, error) {
	for i := 0; i < g.cfg.Counts.Shops; i++ {
		name := fmt.Sprintf("Filial %d", i+1)
		if i < len(shopNamePool) {
			name = shopNamePool[i]
		}
		shopID := g.vals.UUID()
		_, err := x.Exec(`INSERT INTO shops (id, name, legal_name, slug, status,
				features_config, currency, timezone, locale, database_type,
				_status, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			shopID, name, name+" LTDA", Slugify(name), "active",
			g.vals.JSON(map[string]bool{"inventory": true, "orders": true}),
			"BRL", "America/Sao_Paulo", "pt-BR", "sqlite",
			"created", g.vals.PastTimestamp(365), g.vals.PastTimestamp(30))
		if err != nil {
			return 0, fmt.Errorf("insert shop: %w", err)
		}
		g.state.Shops = append(g.state.Shops, shopID)
	}
	return len(g.state.Shops), nil
}

func (g *Generator) genUsers(x store.Execer) (int, error) {
	for i := 0; i < g.cfg.Counts.Users; i++ {
		userID := g.vals.UUID()
		_, err := x.Exec(`INSERT INTO users (id, email, phone, password_hash,
				is_email_verified, profile_type, status, _status, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			userID, g.vals.UniqueEmail(), g.vals.Faker().Phone(),
			g.vals.PasswordHash(), g.vals.IntBetween(0, 1),
			g.vals.Pick(profileTypes), g.vals.Pick(userStatuses),
			"created", g.vals.PastTimestamp(365), g.vals.PastTimestamp(30))
		if err != nil {
			return 0, fmt.Errorf("insert user: %w", err)
		}
		g.state.Users = append(g.state.Users, userID)
	}
	return len(g.state.Users), nil
}

func (g *Generator) genRoles(x store.Execer) (int, error) {
	for i := 0; i < g.cfg.Counts.Roles; i++ {
		name := fmt.Sprintf("role_%d", i+1)
		permissions := []string{"read"}
		if i < len(rolePool) {
			name = rolePool[i].name
			permissions = rolePool[i].permissions
		}
		roleID := g.vals.UUID()
		_, err := x.Exec(`INSERT INTO roles (id, name, permissions, _status, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?)`,
			roleID, name, g.vals.JSON(permissions),
			"created", g.vals.PastTimestamp(365), g.vals.PastTimestamp(30))
		if err != nil {
			return 0, fmt.Errorf("insert role: %w", err)
		}
		g.state.Roles = append(g.state.Roles, roleID)
	}
	return len(g.state.Roles), nil
}

// genUserRoles assigns one random role per user. Re-sampling an already
// assigned (user, role) pair trips the junction primary key; those attempts
// are discarded, so the final count may undershoot the user count.
func (g *Generator) genUserRoles(x store.Execer) (int, error) {
	count := 0
	for _, userID := range g.state.Users {
		outcome, err := store.Insert(x, `INSERT INTO user_roles (user_id, role_id,
				_status, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?)`,
			userID, g.vals.Pick(g.state.Roles),
			"created", g.vals.PastTimestamp(300), g.vals.PastTimestamp(30))
		if err != nil {
			return 0, fmt.Errorf("insert user role: %w", err)
		}
		if outcome == store.Inserted {
			count++
		}
	}
	return count, nil
}

func (g *Generator) genUserSessions(x store.Execer) (int, error) {
	users := g.state.Users
	if len(users) > sessionUserCap {
		users = users[:sessionUserCap]
	}
	for _, userID := range users {
		_, err := x.Exec(`INSERT INTO user_sessions (id, user_id, user_agent, ip_address,
				device_type, token_hash, expires_at, _status, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			g.vals.UUID(), userID, g.vals.Faker().UserAgent(), g.vals.Faker().IPv4Address(),
			g.vals.Pick(deviceTypes), g.vals.TokenHash(), g.vals.FutureTimestamp(7),
			"created", g.vals.PastTimestamp(30), g.vals.PastTimestamp(7))
		if err != nil {
			return 0, fmt.Errorf("insert user session: %w", err)
		}
	}
	return len(users), nil
}

func (g *Generator) genUserIdentities(x store.Execer) (int, error) {
	count := 0
	for _, userID := range g.vals.Sample(g.state.Users, identitySampleSize) {
		outcome, err := store.Insert(x, `INSERT INTO user_identities (id, user_id, provider,
				provider_user_id, profile_data, _status, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			g.vals.UUID(), userID, g.vals.Pick(oauthProviders), g.vals.UUID(),
			g.vals.JSON(map[string]string{"name": g.vals.Faker().Name()}),
			"created", g.vals.PastTimestamp(300), g.vals.PastTimestamp(30))
		if err != nil {
			return 0, fmt.Errorf("insert user identity: %w", err)
		}
		if outcome == store.Inserted {
			count++
		}
	}
	return count, nil
}
