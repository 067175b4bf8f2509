// Command svc-demo-app serves liveness and readiness probes whose outcome an operator
// can flip at runtime, for practicing Kubernetes self-healing and traffic routing.
package main

import "github.com/architeacher/k8s-simulator/services/svc-demo-app/internal/runtime"

func main() {
	runtime.New().Run()
}
