package main

import (
	"github.com/jmoiron/sqlx"
)

type Global struct {
	log logger
	db  *sqlx.DB

	Site string

	// RegistryPath is the sqlite file backing the run registry.
	RegistryPath string
}

type logger interface {
	Print(v ...interface{})
	Printf(format string, v ...interface{})
	Println(v ...interface{})
}

type handler struct {
	*Global
}
