package seeders

import (
	"context"
	"log"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"

	"uyumplast-system/pkg/utils"
)

// SeedRolesAndPermissions наполняет роли, привилегии и их связи.
func SeedRolesAndPermissions(db *pgxpool.Pool) {
	ctx := context.Background()
	log.Println("Наполнение ролей и привилегий...")

	if err := seedPermissions(ctx, db); err != nil {
		log.Fatalf("Ошибка наполнения привилегий: %v", err)
	}
	if err := seedRoles(ctx, db); err != nil {
		log.Fatalf("Ошибка наполнения ролей: %v", err)
	}
	if err := seedRolePermissions(ctx, db); err != nil {
		log.Fatalf("Ошибка наполнения связей ролей и привилегий: %v", err)
	}

	log.Println("Роли и привилегии готовы")
}

// SeedAdmin создаёт администратора. Пароль берётся из ADMIN_PASSWORD.
func SeedAdmin(db *pgxpool.Pool) {
	ctx := context.Background()

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		log.Fatal("ADMIN_PASSWORD не задан, администратор не создан")
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		log.Fatalf("Ошибка хеширования пароля администратора: %v", err)
	}

	var adminRoleID uint64
	if err := db.QueryRow(ctx, `SELECT id FROM roles WHERE name = 'admin'`).Scan(&adminRoleID); err != nil {
		log.Fatalf("Роль admin не найдена, запустите сидер ролей: %v", err)
	}

	query := `
		INSERT INTO users (fio, email, password_hash, role_id, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, TRUE, NOW(), NOW())
		ON CONFLICT (email) DO UPDATE SET password_hash = EXCLUDED.password_hash`
	if _, err := db.Exec(ctx, query, "Администратор", "admin@uyumplast.tj", hash, adminRoleID); err != nil {
		log.Fatalf("Ошибка создания администратора: %v", err)
	}

	log.Println("Администратор создан (admin@uyumplast.tj)")
}

func seedPermissions(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - таблица 'permissions'...")
	query := `INSERT INTO permissions (name, description) VALUES ($1, $2)
		ON CONFLICT (name) DO UPDATE SET description = EXCLUDED.description`

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)
	for _, p := range permissionsData {
		if _, err := tx.Exec(ctx, query, p.Name, p.Description); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

func seedRoles(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - таблица 'roles'...")
	query := `INSERT INTO roles (name, description) VALUES ($1, $2)
		ON CONFLICT (name) DO UPDATE SET description = EXCLUDED.description`

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)
	for _, r := range rolesData {
		if _, err := tx.Exec(ctx, query, r.Name, r.Description); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

func seedRolePermissions(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - таблица 'role_permissions'...")
	query := `
		INSERT INTO role_permissions (role_id, permission_id)
		SELECT r.id, p.id FROM roles r, permissions p
		WHERE r.name = $1 AND p.name = $2
		ON CONFLICT DO NOTHING`

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)
	for roleName, permNames := range rolePermissionsData {
		for _, permName := range permNames {
			if _, err := tx.Exec(ctx, query, roleName, permName); err != nil {
				return err
			}
		}
	}
	return tx.Commit(ctx)
}
