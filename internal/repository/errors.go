package repository

import (
	"errors"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var (
	// ErrDuplicateKey 表示插入撞上了唯一索引，两个并发toggle同时走到Create就会出现
	ErrDuplicateKey = errors.New("记录已存在")
	// ErrNotFound 表示要操作的记录不存在
	ErrNotFound = errors.New("记录不存在")
)

// 错误号1062就是MySQL的"Duplicate entry"，用errors.As检查错误的“根”
func isDuplicateKeyErr(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}

func isRecordNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
