package repository

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLikePattern 转义 LIKE 通配符，搜索词只做字面包含匹配。
func escapeLikePattern(search string) string {
	return likeEscaper.Replace(search)
}

// dbDialectName 获取数据库方言名称，默认按 sqlite 处理。
func dbDialectName(db *gorm.DB) string {
	if db == nil || db.Dialector == nil {
		return "sqlite"
	}
	name := strings.ToLower(strings.TrimSpace(db.Dialector.Name()))
	if name == "" {
		return "sqlite"
	}
	return name
}

// buildNameLikeCondition 构建大小写不敏感的名称匹配条件。
// postgres 使用 ILIKE，其余方言统一走 LOWER(...) LIKE LOWER(?)。
// 两个分支都带 ESCAPE 声明，配合 escapeLikePattern 使用。
func buildNameLikeCondition(db *gorm.DB, column string) string {
	return buildNameLikeConditionByDialect(dbDialectName(db), column)
}

func buildNameLikeConditionByDialect(dialect, column string) string {
	switch strings.ToLower(strings.TrimSpace(dialect)) {
	case "postgres", "postgresql":
		return fmt.Sprintf(`%s ILIKE ? ESCAPE '\'`, column)
	default:
		return fmt.Sprintf(`LOWER(%s) LIKE LOWER(?) ESCAPE '\'`, column)
	}
}
