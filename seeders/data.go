package seeders

type roleData struct {
	Name        string
	Description string
}

type permissionData struct {
	Name        string
	Description string
}

var rolesData = []roleData{
	{Name: "admin", Description: "Администратор системы"},
	{Name: "manager", Description: "Менеджер по продажам"},
	{Name: "production", Description: "Начальник производства"},
	{Name: "warehouse", Description: "Кладовщик"},
	{Name: "logistics", Description: "Логист"},
}

var permissionsData = []permissionData{
	{Name: "superuser", Description: "Полный доступ ко всем операциям"},
	{Name: "orders:view", Description: "Просмотр заказов"},
	{Name: "orders:manage", Description: "Создание и изменение заказов"},
	{Name: "production:view", Description: "Просмотр заданий на резку"},
	{Name: "production:manage", Description: "Управление заданиями на резку"},
	{Name: "warehouse:view", Description: "Просмотр приходов на склад"},
	{Name: "warehouse:manage", Description: "Оформление приходов на склад"},
	{Name: "shipments:view", Description: "Просмотр отгрузок"},
	{Name: "shipments:manage", Description: "Планирование и ведение отгрузок"},
	{Name: "audit:view", Description: "Просмотр истории изменений"},
	{Name: "virtual:manage", Description: "Работа с виртуальными таблицами"},
	{Name: "reports:view", Description: "Выгрузка отчётов"},
	{Name: "rbac:view", Description: "Просмотр справочников ролей и привилегий"},
}

// rolePermissionsData - какие привилегии получает каждая роль.
var rolePermissionsData = map[string][]string{
	"admin": {"superuser"},
	"manager": {
		"orders:view", "orders:manage",
		"production:view", "warehouse:view", "shipments:view",
		"audit:view", "reports:view",
	},
	"production": {
		"orders:view", "production:view", "production:manage",
	},
	"warehouse": {
		"orders:view", "warehouse:view", "warehouse:manage",
	},
	"logistics": {
		"orders:view", "shipments:view", "shipments:manage", "virtual:manage",
	},
}
