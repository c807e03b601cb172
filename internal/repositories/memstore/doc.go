// Package memstore предоставляет реализацию репозиториев поверх in-memory
// хранилища. Ссылки ключуются по коду, пользователи по email - уникальность
// обеспечивается самим ключом хранилища. Мягко удаленные записи остаются
// в хранилище и отфильтровываются на чтении.
package memstore
