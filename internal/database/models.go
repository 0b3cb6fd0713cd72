package database

type User struct {
	Id string
}
