package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS monthly_stats (
    year                 INTEGER NOT NULL,
    month                INTEGER NOT NULL,
    messages             INTEGER NOT NULL DEFAULT 0,
    reels                INTEGER NOT NULL DEFAULT 0,
    reactions            INTEGER NOT NULL DEFAULT 0,
    call_minutes         REAL    NOT NULL DEFAULT 0,
    call_count           INTEGER NOT NULL DEFAULT 0,
    call_starts          INTEGER NOT NULL DEFAULT 0,
    total_content_length INTEGER NOT NULL DEFAULT 0,
    PRIMARY KEY (year, month)
);

CREATE TABLE IF NOT EXISTS snapshot (
    id                   INTEGER PRIMARY KEY CHECK (id = 1),
    start_date           TEXT,
    end_date             TEXT,
    total_message_count  INTEGER NOT NULL,
    saved_at             TEXT NOT NULL
);
`
