package model_test

import (
	"testing"

	"bengkel/internal/domain/model"

	"github.com/stretchr/testify/assert"
)

func TestPermissionsMatrix(t *testing.T) {
	super := model.PermissionsFor(model.RoleSuperAdmin)
	assert.Equal(t, model.Permissions{
		CanManageUsers:    true,
		CanManageProducts: true,
		CanManageServices: true,
		CanManageOrders:   true,
		CanViewReports:    true,
		CanCreateOrders:   true,
	}, super)

	admin := model.PermissionsFor(model.RoleAdmin)
	assert.False(t, admin.CanManageUsers)
	assert.True(t, admin.CanManageProducts)
	assert.True(t, admin.CanManageServices)
	assert.True(t, admin.CanManageOrders)
	assert.True(t, admin.CanViewReports)
	assert.True(t, admin.CanCreateOrders)

	guest := model.PermissionsFor(model.RoleGuest)
	assert.Equal(t, model.Permissions{CanCreateOrders: true}, guest)
}

func TestPermissionsForUnknownRole(t *testing.T) {
	// tanpa identitas / role tak dikenal: semua false
	assert.Equal(t, model.Permissions{}, model.PermissionsFor(""))
	assert.Equal(t, model.Permissions{}, model.PermissionsFor("owner"))
}

func TestRoleIn(t *testing.T) {
	assert.True(t, model.RoleAdmin.In(model.RoleAdmin, model.RoleSuperAdmin))
	assert.True(t, model.RoleSuperAdmin.In(model.RoleSuperAdmin))
	assert.False(t, model.RoleGuest.In(model.RoleAdmin, model.RoleSuperAdmin))
	assert.False(t, model.RoleAdmin.In())
}

func TestStatusValidation(t *testing.T) {
	assert.True(t, model.OrderStatusMenungguPersetujuan.IsValid())
	assert.True(t, model.OrderStatusDiproses.IsValid())
	assert.True(t, model.OrderStatusSelesai.IsValid())
	assert.True(t, model.OrderStatusDitolak.IsValid())
	assert.False(t, model.OrderStatus("Dikirim").IsValid())

	assert.True(t, model.ApprovalPending.IsValid())
	assert.False(t, model.ApprovalStatus("maybe").IsValid())
}
