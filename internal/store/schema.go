package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS cycles (
    id              TEXT PRIMARY KEY,
    start_date      TEXT NOT NULL,
    end_date        TEXT NOT NULL,
    initial_income  TEXT NOT NULL,
    created_at      TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS transactions (
    id          TEXT PRIMARY KEY,
    cycle_id    TEXT NOT NULL REFERENCES cycles(id) ON DELETE CASCADE,
    kind        TEXT NOT NULL CHECK (kind IN ('income', 'expense')),
    amount      TEXT NOT NULL,
    category    TEXT NOT NULL DEFAULT 'Misc',
    description TEXT NOT NULL DEFAULT '',
    created_at  TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS audit_log (
    id         INTEGER PRIMARY KEY AUTOINCREMENT,
    action     TEXT NOT NULL,
    entity     TEXT NOT NULL,
    entity_id  TEXT NOT NULL,
    detail     TEXT NOT NULL DEFAULT '',
    logged_at  TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%SZ', 'now'))
);

CREATE INDEX IF NOT EXISTS idx_transactions_cycle ON transactions(cycle_id);
CREATE INDEX IF NOT EXISTS idx_cycles_created ON cycles(created_at);

CREATE TRIGGER IF NOT EXISTS trg_transactions_delete_audit
AFTER DELETE ON transactions
BEGIN
    INSERT INTO audit_log (action, entity, entity_id, detail)
    VALUES (
        'delete',
        'transaction',
        OLD.id,
        OLD.kind || ' ' || OLD.amount || ' (' || OLD.category || ')'
    );
END;
`
