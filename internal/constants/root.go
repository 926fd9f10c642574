package constants

const (
	// AppName is used for the keyring service name and logger prefix
	AppName = "smartsched"

	// DefaultKeyringUser is the keyring account under which the remote key is stored
	DefaultKeyringUser = "remote-key"

	// RemoteTable is the name of the key-value table on the remote store
	RemoteTable = "user_data"
)

// RemoteTableSQL is the SQL a user runs once in their Supabase project to
// provision the sync table. Printed by `smartsched settings --show-sql`.
const RemoteTableSQL = `create table user_data (
  id text primary key,
  content jsonb,
  updated_at timestamp with time zone default timezone('utc'::text, now())
);
alter table user_data enable row level security;
create policy "Public Access" on user_data for all using (true);`
