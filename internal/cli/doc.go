// Package cli provides the interactive stockkeeper menu.
//
// It wires configuration, the user directory and per-user catalog stores
// into three numbered menus:
//
//   - the top menu: sign up, login, admin menu, exit
//   - the user menu, over one user's catalog: add, update stock, check
//     stock, delete, display, search, logout
//   - the admin menu: delete, update, open a user's catalog, list users,
//     summary of all catalogs, replace admin, exit
//
// Domain errors are printed and control returns to the current menu.
// Storage I/O failures end the session and are returned from App.Run.
// End of input leaves every menu cleanly.
package cli
