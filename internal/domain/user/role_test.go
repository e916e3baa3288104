package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRole_Valid(t *testing.T) {
	assert.True(t, RoleAdministrador.Valid())
	assert.True(t, RoleEncarregado.Valid())
	assert.False(t, Role("administrador").Valid())
	assert.False(t, Role("").Valid())
}

func TestNormalizeLogin(t *testing.T) {
	assert.Equal(t, "joao.silva", NormalizeLogin("  Joao.Silva "))
}

func TestActor_Is(t *testing.T) {
	a := Actor{ID: 1, Role: RoleEncarregado}
	assert.True(t, a.Is(RoleEncarregado))
	assert.False(t, a.Is(RoleAdministrador))
}

func TestValidLogin(t *testing.T) {
	assert.True(t, ValidLogin("joao.silva"))
	assert.True(t, ValidLogin("m123"))
	assert.False(t, ValidLogin("ab"))
	assert.False(t, ValidLogin("Joao"))
	assert.False(t, ValidLogin(".joao"))
	assert.False(t, ValidLogin("joao silva"))
}
