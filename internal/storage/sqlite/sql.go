package sqlite

const schemaSQL = `
CREATE TABLE IF NOT EXISTS drafts (
  id         TEXT PRIMARY KEY,
  name       TEXT NOT NULL,
  city_id    INTEGER,
  start_date TEXT NOT NULL,
  end_date   TEXT NOT NULL,
  created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS draft_units (
  id           INTEGER PRIMARY KEY AUTOINCREMENT,
  draft_id     TEXT NOT NULL REFERENCES drafts(id) ON DELETE CASCADE,
  stay_unit_id INTEGER NOT NULL,
  start_date   TEXT NOT NULL,
  end_date     TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_draft_units_draft ON draft_units (draft_id);
`

const insertDraftSQL = `
INSERT INTO drafts (id, name, city_id, start_date, end_date, created_at)
VALUES (?, ?, ?, ?, ?, ?)
`

const getDraftSQL = `
SELECT id, name, city_id, start_date, end_date, created_at
FROM drafts
WHERE id = ?
`

const listDraftsSQL = `
SELECT id, name, city_id, start_date, end_date, created_at
FROM drafts
ORDER BY created_at DESC
`

const deleteDraftSQL = `DELETE FROM drafts WHERE id = ?`

const insertUnitSQL = `
INSERT INTO draft_units (draft_id, stay_unit_id, start_date, end_date)
VALUES (?, ?, ?, ?)
`

const listUnitsSQL = `
SELECT id, stay_unit_id, start_date, end_date
FROM draft_units
WHERE draft_id = ?
ORDER BY id
`

const deleteUnitSQL = `DELETE FROM draft_units WHERE draft_id = ? AND id = ?`
