package vmrun

import (
	"context"

	"github.com/xdg/vmctl/internal/process"
)

// Guest is a VM plus the guest account used to operate inside it. It only
// saves repeating the same arguments; every call is still an independent
// vmrun invocation.
type Guest struct {
	vmrun *VMRun
	vmx   string
	creds Credentials
}

// VMX returns the VM descriptor path.
func (g *Guest) VMX() string {
	return g.vmx
}

// Credentials returns the guest account.
func (g *Guest) Credentials() Credentials {
	return g.creds
}

// Start powers on the VM. See [VMRun.Start].
func (g *Guest) Start(ctx context.Context, gui GUIMode) error {
	return g.vmrun.Start(ctx, g.vmx, gui)
}

// Stop asks the VM to shut down. See [VMRun.Stop].
func (g *Guest) Stop(ctx context.Context) (process.Result, error) {
	return g.vmrun.Stop(ctx, g.vmx)
}

// RunScript runs scriptBody with interpreterPath in the guest and returns its
// exit status. See [VMRun.RunScriptInGuest].
func (g *Guest) RunScript(ctx context.Context, interpreterPath, scriptBody string) (int, error) {
	return g.vmrun.RunScriptInGuest(ctx, g.vmx, g.creds, interpreterPath, scriptBody)
}

// CopyFileToHost copies guestPath to hostPath. See
// [VMRun.CopyFileFromGuestToHost].
func (g *Guest) CopyFileToHost(ctx context.Context, guestPath, hostPath string) error {
	return g.vmrun.CopyFileFromGuestToHost(ctx, g.vmx, g.creds, guestPath, hostPath)
}

// CopyFileFromHost copies hostPath into the guest at guestPath. See
// [VMRun.CopyFileFromHostToGuest].
func (g *Guest) CopyFileFromHost(ctx context.Context, hostPath, guestPath string) error {
	return g.vmrun.CopyFileFromHostToGuest(ctx, g.vmx, g.creds, hostPath, guestPath)
}
