// Package commands defines the coursectl CLI, a thin shell over internal/client.
//
// Commands
//
//   - recommend      Recommended courses for a user
//   - click          Record a course click
//   - evaluate       Offline recommender metrics
//   - courses        Course catalogue, optionally paged and filtered
//   - course-types   Course categories
//   - register       Create an account
//   - login          Authenticate; exits non-zero when rejected
//   - profile        major, update, password, avatar
//   - questions      Quiz questions by course or category
//   - plans          list, create, update, delete
//   - wrong          Wrong-question notebook: list, add, delete, count, by-category
//   - admin          login, users, questions, wrong-questions, plans, courses,
//     set-course-url, delete-user
//
// # Implementation
//
// The root command loads configuration (defaults, coursehub.yaml, COURSEHUB_* env),
// applies the persistent flags on top and builds one client before any subcommand
// runs. Every subcommand prints the decoded response as indented JSON.
package commands
