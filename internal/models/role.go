package models

type Role struct {
	Name  string `json:"name" gorm:"primaryKey;size:255"`
	Users []User `json:"-" gorm:"many2many:users_roles;foreignKey:Name;joinForeignKey:RoleName;references:Login;joinReferences:UserLogin"`
}
