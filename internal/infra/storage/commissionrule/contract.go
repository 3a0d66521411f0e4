package commissionrule

import "github.com/schedfy/dashboard-service/pkg/dbmetrics"

// DBExecutor query interface satisfied by *sql.DB and *dbmetrics.DB
type DBExecutor = dbmetrics.DBExecutor
