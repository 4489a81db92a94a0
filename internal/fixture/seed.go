package fixture

// Seed data and verification queries. The row literals are fixed: the
// downstream reader asserts against these exact values, so they must
// never drift between runs.

// DefaultKey is the encryption credential baked into the fixture. It is
// deliberately not a secret, the reader side carries the same literal.
const DefaultKey = "test-encryption-key-123"

const insertEmployeesSQL = `
INSERT INTO employees (name, department, salary, hire_date) VALUES
    ('Alice Johnson', 'Engineering', 95000.00, '2020-01-15'),
    ('Bob Smith', 'Sales', 75000.00, '2019-06-01'),
    ('Charlie Brown', 'Engineering', 105000.00, '2018-03-20'),
    ('Diana Prince', 'HR', 85000.00, '2021-09-10'),
    ('Eve Davis', 'Engineering', 98000.00, '2020-11-05'),
    ('Frank Miller', 'Sales', 82000.00, '2019-12-15');
`

const insertProjectsSQL = `
INSERT INTO projects (name, employee_id, status) VALUES
    ('Website Redesign', 1, 'In Progress'),
    ('Mobile App', 3, 'In Progress'),
    ('Database Migration', 5, 'Completed'),
    ('Q4 Sales Campaign', 2, 'Planning'),
    ('Backend Refactor', 1, 'Completed');
`

// employeeProjectsSQL lists each employee with the number of projects
// assigned to them, ordered by name. Employees without projects show a
// zero count via the left join.
const employeeProjectsSQL = `
SELECT
    e.name,
    e.department,
    e.salary,
    COUNT(p.id) AS project_count
FROM employees e
LEFT JOIN projects p ON e.id = p.employee_id
GROUP BY e.id, e.name, e.department, e.salary
ORDER BY e.name;
`

// departmentStatsSQL aggregates headcount and salary figures per
// department, ordered alphabetically.
const departmentStatsSQL = `
SELECT
    department,
    COUNT(*) AS emp_count,
    AVG(salary) AS avg_salary,
    MAX(salary) AS max_salary
FROM employees
GROUP BY department
ORDER BY department;
`

const (
	dumpEmployeesSQL = `SELECT id, name, department, salary, hire_date FROM employees ORDER BY id;`
	dumpProjectsSQL  = `SELECT id, name, employee_id, status FROM projects ORDER BY id;`

	countEmployeesSQL = `SELECT COUNT(*) FROM employees;`
	countProjectsSQL  = `SELECT COUNT(*) FROM projects;`
)

const (
	wantEmployees = 6
	wantProjects  = 5
)
