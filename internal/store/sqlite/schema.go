package sqlite

// Fixture schema. Two related tables plus a secondary index on
// employees.department. The projects.employee_id reference is declared
// but never enforced (the foreign_keys pragma stays off), so the
// relationship is a soft invariant of the seed data only.

// CreateEmployeesSQL defines the employees table.
const CreateEmployeesSQL = `
CREATE TABLE IF NOT EXISTS employees (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    department TEXT NOT NULL,
    salary REAL,
    hire_date TEXT
);
`

// CreateProjectsSQL defines the projects table. Depends on employees
// existing first.
const CreateProjectsSQL = `
CREATE TABLE IF NOT EXISTS projects (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    employee_id INTEGER,
    status TEXT,
    FOREIGN KEY (employee_id) REFERENCES employees(id)
);
`

// CreateDepartmentIndexSQL adds the non-unique lookup index on
// employees.department.
const CreateDepartmentIndexSQL = `
CREATE INDEX idx_department ON employees(department);
`
